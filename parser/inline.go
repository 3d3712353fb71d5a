package parser

import (
	gotok "go/token"
	"strings"

	"github.com/jschaf/snekdown/ast"
	stok "github.com/jschaf/snekdown/token"
)

func (p *Parser) pos(offset int) gotok.Pos { return p.file.Pos(offset) }

// parseSubText parses one inline element, trying emphasis, bracketed forms
// and the other special productions in a fixed priority order before
// falling back to plain text. Mirrors the structure of
// original_source/src/parser.rs's parse_subtext, extended with the forms
// that grammar did not yet have (url, image, checkbox, emoji, colored,
// placeholder, bib reference, template variable).
func (p *Parser) parseSubText() (ast.Inline, error) {
	s := p.scanner
	start := s.Position()

	switch {
	case s.CheckSequence(stok.SeqBold):
		return p.parseBold(start)
	case s.CheckSpecial(stok.Star):
		return p.parseItalic(start)
	case s.CheckSpecial(stok.Underscore):
		return p.parseUnderlined(start)
	case s.CheckSequence(stok.SeqStriked):
		return p.parseStriked(start)
	case s.CheckSpecial(stok.Caret):
		return p.parseSuperscript(start)
	case s.CheckSpecial(stok.Backtick):
		return p.parseMonospace(start)
	case s.CheckSpecial(stok.Bang):
		if img, err := p.parseImage(start); err == nil {
			return img, nil
		}
		s.Revert(start)
	case s.CheckSpecial(stok.LBracket):
		return p.parseBracketed(start)
	case s.CheckSpecial(stok.Colon):
		if e, err := p.parseEmoji(start); err == nil {
			return e, nil
		}
		s.Revert(start)
	case s.CheckSpecial(stok.LBrace):
		if c, err := p.parseColored(start); err == nil {
			return c, nil
		}
		s.Revert(start)
	case s.CheckSpecial(stok.Dollar):
		if tv, err := p.parseTemplateVariable(start); err == nil {
			return tv, nil
		}
		s.Revert(start)
	case s.CheckSpecial(stok.LineBreak), s.CheckSpecial(stok.Pipe):
		return nil, newParseError(start)
	}

	return p.parsePlainText(start)
}

func (p *Parser) parseBold(start int) (ast.Inline, error) {
	s := p.scanner
	if _, ok := s.Advance(); !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}
	value, err := p.parseSubText()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	if s.CheckSequence(stok.SeqBold) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.BoldText{Value: value}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseItalic(start int) (ast.Inline, error) {
	s := p.scanner
	if _, ok := s.Advance(); !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}
	value, err := p.parseSubText()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	if s.CheckSpecial(stok.Star) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.ItalicText{Value: value}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseUnderlined(start int) (ast.Inline, error) {
	s := p.scanner
	if _, ok := s.Advance(); !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}
	value, err := p.parseSubText()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	if s.CheckSpecial(stok.Underscore) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.UnderlinedText{Value: value}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseStriked(start int) (ast.Inline, error) {
	s := p.scanner
	if _, ok := s.Advance(); !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}
	value, err := p.parseSubText()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	if s.CheckSequence(stok.SeqStriked) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.StrikedText{Value: value}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseSuperscript(start int) (ast.Inline, error) {
	s := p.scanner
	if _, ok := s.Advance(); !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}
	value, err := p.parseSubText()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	if s.CheckSpecial(stok.Caret) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.SuperscriptText{Value: value}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseMonospace(start int) (ast.Inline, error) {
	s := p.scanner
	s.Advance()
	text, err := s.GetStringUntil([]rune{stok.Backtick}, []rune{stok.LineBreak})
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if s.CheckSpecial(stok.Backtick) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.MonospaceText{Value: text}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

// parsePlainText accumulates characters up to the next special character,
// matching parser.rs's parse_plain_text break set plus the forms this
// grammar adds.
func (p *Parser) parsePlainText(start int) (ast.Inline, error) {
	s := p.scanner
	breakSet := []rune{
		stok.LineBreak, stok.Star, stok.Underscore, stok.Tilde, stok.Caret,
		stok.Backtick, stok.Pipe, stok.LBracket, stok.Bang, stok.Colon,
		stok.LBrace, stok.Dollar,
	}
	var b strings.Builder
	for {
		if s.AtEOF() || s.CheckSpecialGroup(breakSet) {
			break
		}
		// An unescaped backslash only disables the next character's special
		// meaning; it isn't itself part of the literal text.
		if s.Peek() != stok.Escape || s.Escaped() {
			b.WriteRune(s.Peek())
		}
		if _, ok := s.Advance(); !ok {
			break
		}
	}
	if b.Len() == 0 {
		s.Revert(start)
		return nil, newParseError(start)
	}
	end := s.Position()
	n := &ast.PlainText{Value: b.String()}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

// parseBracketed dispatches the four `[...]`-led productions in fixed
// priority order: placeholder `[[name]]`, bib reference `[@key]`, checkbox
// `[x]`/`[ ]`, then the url/image-description fallback `[text](url)`.
func (p *Parser) parseBracketed(start int) (ast.Inline, error) {
	if v, err := p.tryPlaceholderInline(start); err == nil {
		return v, nil
	}
	p.scanner.Revert(start)

	if v, err := p.tryBibReference(start); err == nil {
		return v, nil
	}
	p.scanner.Revert(start)

	if v, err := p.tryCheckbox(start); err == nil {
		return v, nil
	}
	p.scanner.Revert(start)

	return p.parseUrl(start)
}

func (p *Parser) tryPlaceholderInline(start int) (ast.Inline, error) {
	s := p.scanner
	if !s.CheckSequence([]rune{stok.LBracket, stok.LBracket}) {
		return nil, newParseError(start)
	}
	s.Advance()
	name, err := s.GetStringUntil([]rune{stok.RBracket}, []rune{stok.LineBreak})
	if err != nil || name == "" {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSequence([]rune{stok.RBracket, stok.RBracket}) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	end := s.Position()
	shared := ast.NewPlaceholder(name)
	shared.StartPos, shared.EndPos = p.pos(start), p.pos(end)
	return &ast.PlaceholderInline{Shared: shared}, nil
}

func (p *Parser) tryBibReference(start int) (ast.Inline, error) {
	s := p.scanner
	if !s.CheckSequence([]rune{stok.LBracket, stok.At}) {
		return nil, newParseError(start)
	}
	s.Advance()
	key, err := s.GetStringUntil([]rune{stok.RBracket}, []rune{stok.LineBreak})
	if err != nil || key == "" {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSpecial(stok.RBracket) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	end := s.Position()
	ref := ast.NewBibReference(key)
	ref.StartPos, ref.EndPos = p.pos(start), p.pos(end)
	return ref, nil
}

func (p *Parser) tryCheckbox(start int) (ast.Inline, error) {
	s := p.scanner
	if !s.CheckSpecial(stok.LBracket) {
		return nil, newParseError(start)
	}
	s.Advance()
	var checked bool
	switch s.Peek() {
	case ' ':
		checked = false
	case 'x', 'X':
		checked = true
	default:
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	if !s.CheckSpecial(stok.RBracket) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	end := s.Position()
	n := &ast.Checkbox{Checked: checked}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseUrl(start int) (ast.Inline, error) {
	s := p.scanner
	if !s.CheckSpecial(stok.LBracket) {
		return nil, newParseError(start)
	}
	s.Advance()
	desc, err := s.GetStringUntil([]rune{stok.RBracket}, []rune{stok.LineBreak})
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSpecial(stok.RBracket) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	if !s.CheckSpecial(stok.LParen) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	target, err := s.GetStringUntil([]rune{stok.RParen}, []rune{stok.LineBreak})
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSpecial(stok.RParen) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	end := s.Position()
	n := &ast.Url{URL: target, Description: desc, HasDescription: desc != ""}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseImage(start int) (ast.Inline, error) {
	s := p.scanner
	s.Advance() // past '!'
	urlStart := s.Position()
	inline, err := p.parseUrl(urlStart)
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	url, ok := inline.(*ast.Url)
	if !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}
	var meta *ast.InlineMetadata
	if m, merr := p.parseInlineMetadata(); merr == nil {
		meta = m
	}
	end := s.Position()
	n := &ast.Image{URL: *url, Metadata: meta}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseEmoji(start int) (ast.Inline, error) {
	s := p.scanner
	s.Advance()
	name, err := s.GetStringUntil([]rune{stok.Colon}, []rune{stok.LineBreak, ' '})
	if err != nil || name == "" {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSpecial(stok.Colon) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	end := s.Position()
	n := &ast.Emoji{Name: name, Value: resolveEmoji(name)}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseColored(start int) (ast.Inline, error) {
	s := p.scanner
	s.Advance() // past '{'
	if !s.CheckSpecial('#') {
		s.Revert(start)
		return nil, newParseError(start)
	}
	color, err := s.GetStringUntil([]rune{stok.RBrace}, []rune{stok.LineBreak})
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSpecial(stok.RBrace) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	value, err := p.parseSubText()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	if s.CheckSequence([]rune{stok.LBrace, stok.RBrace}) {
		s.Advance()
	}
	end := s.Position()
	n := &ast.Colored{Color: color, Value: value}
	n.StartPos, n.EndPos = p.pos(start), p.pos(end)
	return n, nil
}

func (p *Parser) parseTemplateVariable(start int) (ast.Inline, error) {
	s := p.scanner
	s.Advance() // past '$'
	if !s.CheckSpecial(stok.LBrace) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	name, err := s.GetStringUntil([]rune{stok.RBrace}, []rune{stok.LineBreak})
	if err != nil || name == "" {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if !s.CheckSpecial(stok.RBrace) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()
	end := s.Position()
	shared := ast.NewTemplateVariable(name)
	shared.StartPos, shared.EndPos = p.pos(start), p.pos(end)
	return shared, nil
}
