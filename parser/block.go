package parser

import (
	"strings"
	"unicode"

	"github.com/jschaf/snekdown/ast"
	stok "github.com/jschaf/snekdown/token"
)

// parseBlock parses one Block production in the fixed priority order
// section, list, table, code block, quote, import, placeholder, paragraph,
// mirroring original_source/src/parser/block.rs's parse_block including
// its section-nesting unwind protocol.
func (p *Parser) parseBlock() (ast.Block, error) {
	if p.sectionReturn != nil {
		sr := *p.sectionReturn
		if sr <= p.sectionNesting && p.sectionNesting > 0 {
			return nil, newParseErrorMsg(p.scanner.Position(), "invalid section nesting")
		}
		p.sectionReturn = nil
	}

	if section, err := p.parseSection(); err == nil {
		return section, nil
	} else if p.sectionReturn != nil {
		return nil, newParseError(p.scanner.Position())
	}

	if list, err := p.parseList(); err == nil {
		return list, nil
	}
	if table, err := p.parseTable(); err == nil {
		return table, nil
	}
	if cb, err := p.parseCodeBlock(); err == nil {
		return cb, nil
	}
	if quote, err := p.parseQuote(); err == nil {
		return quote, nil
	}
	if imp, err := p.parseImportBlock(); err == nil {
		return imp, nil
	} else if p.sectionReturn != nil {
		return nil, newParseError(p.scanner.Position())
	}
	if ph, err := p.parsePlaceholderBlock(); err == nil {
		return ph, nil
	}
	if para, err := p.parseParagraph(); err == nil {
		return para, nil
	}

	if p.scanner.AtEOF() {
		return nil, newEOFError(p.scanner.Position())
	}
	return nil, newParseError(p.scanner.Position())
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// parseSection parses a header followed by the blocks nested under it.
// Along any chain of nested sections, header size must strictly increase;
// violating that sets sectionReturn so the caller unwinds to the right
// depth instead of silently accepting a malformed nesting.
func (p *Parser) parseSection() (*ast.Section, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()
	if !s.CheckSpecial(stok.Hash) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	size := uint8(1)
	for {
		if _, ok := s.Advance(); !ok {
			break
		}
		if !s.CheckSpecial(stok.Hash) {
			break
		}
		size++
	}
	var metadata *ast.InlineMetadata
	if m, err := p.parseInlineMetadata(); err == nil {
		metadata = m
	}
	if size <= p.sectionNesting || !unicode.IsSpace(s.Peek()) {
		if size <= p.sectionNesting {
			sr := size
			p.sectionReturn = &sr
		}
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.SeekInlineWhitespace()
	header, err := p.parseHeader()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	header.Size = size
	if metadata != nil {
		if v, ok := metadata.Get("anchor"); ok {
			if s, ok := v.(ast.MetaString); ok {
				header.Anchor = string(s)
			}
		}
	}
	p.sectionNesting = size
	p.sections = append(p.sections, size)

	section := ast.NewSection(header)
	section.Metadata = metadata
	section.StartPos = p.pos(start)
	s.SeekWhitespace()

	for {
		block, berr := p.parseBlock()
		if berr != nil {
			break
		}
		section.AddElement(block)
	}

	p.sections = p.sections[:len(p.sections)-1]
	if len(p.sections) > 0 {
		p.sectionNesting = p.sections[len(p.sections)-1]
	} else {
		p.sectionNesting = 0
	}
	section.EndPos = p.pos(s.Position())
	return section, nil
}

func (p *Parser) parseCodeBlock() (*ast.CodeBlock, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()
	if !s.CheckSequence(stok.SeqCodeBlock) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance() // past the opening fence

	language, err := s.GetStringUntil([]rune{stok.LineBreak}, []rune{})
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance() // past the line break

	code, err := s.GetStringUntilSequence([][]rune{stok.SeqCodeBlock}, []rune{})
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if s.CheckSequence(stok.SeqCodeBlock) {
		s.Advance()
	}
	end := s.Position()
	return &ast.CodeBlock{Language: language, Code: code, StartPos: p.pos(start), EndPos: p.pos(end)}, nil
}

func (p *Parser) parseQuote() (*ast.Quote, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()
	var metadata *ast.InlineMetadata
	if m, err := p.parseInlineMetadata(); err == nil {
		metadata = m
	}
	quote := ast.NewQuote(metadata)
	quote.StartPos = p.pos(start)

	for s.CheckSpecial(stok.Greater) {
		if _, ok := s.Advance(); !ok {
			break
		}
		if !(s.CheckSeekInlineWhitespace() || s.CheckLineBreak()) {
			break
		}
		text, err := p.parseTextLine()
		if err != nil {
			break
		}
		if len(text.SubText) > 0 {
			quote.AddText(text)
		}
	}
	if len(quote.Text) == 0 {
		s.Revert(start)
		return nil, newParseError(start)
	}
	quote.EndPos = p.pos(s.Position())
	return quote, nil
}

// parseParagraph is the fallback block: a run of Lines up to the next
// block-special character or sequence.
func (p *Parser) parseParagraph() (*ast.Paragraph, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()
	para := ast.NewParagraph()
	para.StartPos = p.pos(start)

	for {
		line, err := p.parseLine()
		if err != nil {
			break
		}
		para.AddElement(line)
		if s.CheckSequenceGroup(stok.BlockSpecialSequences) || s.CheckSpecialGroup(stok.BlockSpecialChars) {
			break
		}
	}

	if len(para.Elements) == 0 {
		s.Revert(start)
		return nil, newParseError(start)
	}
	para.EndPos = p.pos(s.Position())
	return para, nil
}

// parseList parses one or more ListItems, rebuilding their nesting
// iteratively from each item's indentation Level, exactly as
// original_source/src/parser/block.rs's parse_list does.
func (p *Parser) parseList() (*ast.List, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()

	ordered := !s.CheckSpecialGroup(stok.UnorderedBullets)
	list := ast.NewList()
	list.Ordered = ordered
	list.StartPos = p.pos(start)

	var hierarchy []*ast.ListItem
	for {
		item, err := p.parseListItem(ordered)
		if err != nil {
			break
		}
		for len(hierarchy) > 0 {
			parent := hierarchy[len(hierarchy)-1]
			switch {
			case parent.Level < item.Level:
				goto pushed
			case parent.Level == item.Level:
				hierarchy = hierarchy[:len(hierarchy)-1]
				if len(hierarchy) == 0 {
					list.AddItem(parent)
				} else {
					hierarchy[len(hierarchy)-1].AddChild(parent)
				}
				goto pushed
			default:
				hierarchy = hierarchy[:len(hierarchy)-1]
				if len(hierarchy) == 0 {
					item.AddChild(parent)
				} else {
					hierarchy[len(hierarchy)-1].AddChild(parent)
				}
			}
		}
	pushed:
		hierarchy = append(hierarchy, item)
	}

	for len(hierarchy) > 1 {
		item := hierarchy[len(hierarchy)-1]
		hierarchy = hierarchy[:len(hierarchy)-1]
		hierarchy[len(hierarchy)-1].AddChild(item)
	}
	list.Items = append(list.Items, hierarchy...)

	if len(list.Items) == 0 {
		s.Revert(start)
		return nil, newParseError(start)
	}
	list.EndPos = p.pos(s.Position())
	return list, nil
}

// parseListItem parses a single `-`/`*`/`+` or `N.` prefixed item. Level is
// the indentation (leading whitespace count) before the bullet.
func (p *Parser) parseListItem(ordered bool) (*ast.ListItem, error) {
	s := p.scanner
	start := s.Position()
	s.SeekInlineWhitespace()
	level := uint16(s.Position() - start)

	if ordered {
		if !isDigit(s.Peek()) {
			s.Revert(start)
			return nil, newParseError(start)
		}
		for isDigit(s.Peek()) {
			if _, ok := s.Advance(); !ok {
				s.Revert(start)
				return nil, newParseError(start)
			}
		}
		if !s.CheckSpecial(stok.Dot) {
			s.Revert(start)
			return nil, newParseError(start)
		}
		if _, ok := s.Advance(); !ok {
			s.Revert(start)
			return nil, newParseError(start)
		}
	} else {
		if !s.CheckSpecialGroup(stok.UnorderedBullets) {
			s.Revert(start)
			return nil, newParseError(start)
		}
		if _, ok := s.Advance(); !ok {
			s.Revert(start)
			return nil, newParseError(start)
		}
	}
	if !s.CheckSeekInlineWhitespace() {
		s.Revert(start)
		return nil, newParseError(start)
	}
	text, err := p.parseTextLine()
	if err != nil {
		s.Revert(start)
		return nil, err
	}
	item := ast.NewListItem(text, level, ordered)
	item.StartPos, item.EndPos = p.pos(start), p.pos(s.Position())
	return item, nil
}

// parseTable parses a header Row, an optional `---|---` separator row, and
// the body Rows. Without a separator row the Table consists of the header
// row alone.
func (p *Parser) parseTable() (*ast.Table, error) {
	s := p.scanner
	header, err := p.parseRow()
	if err != nil {
		return nil, err
	}
	seekIndex := s.Position()
	s.SeekInlineWhitespace()

	isSeparator := s.CheckSpecial(stok.Pipe)
	if isSeparator {
		for {
			if _, ok := s.Advance(); !ok {
				break
			}
			if s.CheckLineBreak() {
				break
			}
			if !s.CheckSpecialGroup([]rune{stok.Minus, stok.Pipe}) {
				isSeparator = false
				break
			}
		}
	}

	table := ast.NewTable(*header)
	if !isSeparator {
		s.Revert(seekIndex)
		return table, nil
	}
	if s.CheckLineBreak() {
		s.Advance()
	}
	for {
		row, rerr := p.parseRow()
		if rerr != nil {
			break
		}
		table.AddRow(*row)
	}
	return table, nil
}

// parseRow parses `| cell | cell | ...` up to and including its trailing
// line break.
func (p *Parser) parseRow() (*ast.Row, error) {
	s := p.scanner
	start := s.Position()
	s.SeekInlineWhitespace()
	if !s.CheckSpecial(stok.Pipe) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if _, ok := s.Advance(); !ok {
		s.Revert(start)
		return nil, newParseError(start)
	}

	row := &ast.Row{}
	for {
		cell, err := p.parseRowCell()
		if err != nil {
			break
		}
		row.AddCell(ast.Cell{Text: cell})
		if s.CheckSpecial(stok.Pipe) {
			if _, ok := s.Advance(); ok {
				continue
			}
		}
		break
	}
	if s.CheckLineBreak() {
		s.Advance()
	}
	if len(row.Cells) == 0 {
		s.Revert(start)
		return nil, newParseError(start)
	}
	return row, nil
}

// parseRowCell parses one `|`-delimited table cell's text, stopping at the
// next `|` or line break without consuming either (parseRow decides what
// to do next).
func (p *Parser) parseRowCell() (*ast.TextLine, error) {
	s := p.scanner
	start := s.Position()
	line := ast.NewTextLine()
	for {
		if s.CheckSpecial(stok.Pipe) || s.CheckLineBreak() || s.AtEOF() {
			break
		}
		sub, err := p.parseSubText()
		if err != nil {
			break
		}
		line.AddSubText(sub)
	}
	end := s.Position()
	line.StartPos, line.EndPos = p.pos(start), p.pos(end)
	if len(line.SubText) == 0 {
		return line, newParseError(start)
	}
	if pt, ok := line.SubText[0].(*ast.PlainText); ok {
		pt.Value = strings.TrimLeft(pt.Value, " \t")
	}
	if pt, ok := line.SubText[len(line.SubText)-1].(*ast.PlainText); ok {
		pt.Value = strings.TrimRight(pt.Value, " \t")
	}
	return line, nil
}

// parseImportBlock parses `<![path]>`. Imports are only legal at a
// document's top level; inside a section, section_return is set to 0 so
// the enclosing parseBlock loop unwinds all the way out.
func (p *Parser) parseImportBlock() (*ast.Import, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()
	if !s.CheckSequence(stok.SeqImportStart) {
		s.Revert(start)
		return nil, newParseError(start)
	}
	s.Advance()

	var path strings.Builder
	for {
		ch, ok := s.Advance()
		if !ok {
			break
		}
		if s.CheckLineBreak() || s.CheckSpecial(stok.Greater) {
			break
		}
		path.WriteRune(ch)
	}
	if s.CheckLineBreak() || path.Len() == 0 {
		s.Revert(start)
		return nil, newParseError(start)
	}
	if s.CheckSpecial(stok.Greater) {
		s.Advance()
	}

	if p.sectionNesting > 0 {
		zero := uint8(0)
		p.sectionReturn = &zero
		s.Revert(start)
		return nil, newParseErrorMsg(start, "import section nesting error")
	}

	s.SeekWhitespace()
	anchor, err := p.doImport(path.String())
	if err != nil {
		return nil, newParseError(s.Position())
	}
	end := s.Position()
	imp := ast.NewImport(path.String(), anchor)
	imp.StartPos, imp.EndPos = p.pos(start), p.pos(end)
	return imp, nil
}

// parsePlaceholderBlock parses a `[[name]]` that sits alone on its own
// line, lifting it from an inline position to a block.
func (p *Parser) parsePlaceholderBlock() (*ast.PlaceholderBlock, error) {
	s := p.scanner
	start := s.Position()
	s.SeekWhitespace()
	inl, err := p.tryPlaceholderInline(s.Position())
	if err != nil {
		s.Revert(start)
		return nil, newParseError(start)
	}
	ph := inl.(*ast.PlaceholderInline)
	if s.CheckLineBreak() {
		s.Advance()
	} else if !s.AtEOF() {
		s.Revert(start)
		return nil, newParseError(start)
	}
	return &ast.PlaceholderBlock{Shared: ph.Shared}, nil
}
