// Package loader parses the legacy sectioned Adventure data file into a
// world.World.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// blankMarker starts text that should display as nothing.
const blankMarker = ">$<"

// MalformedDataError reports a structural problem in the data file.
type MalformedDataError struct {
	Line    int
	Section int
	Reason  string
}

func (e *MalformedDataError) Error() string {
	if e.Section == 0 {
		return fmt.Sprintf("malformed world data at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed world data at line %d (section %d): %s", e.Line, e.Section, e.Reason)
}

// field is one tab-separated column. Numeric columns are parsed, but the
// raw text is kept so descriptions that happen to start with a number
// survive intact.
type field struct {
	raw   string
	num   int
	isNum bool
}

func parseFields(line string) []field {
	parts := strings.Split(line, "\t")
	out := make([]field, len(parts))
	for i, p := range parts {
		out[i] = field{raw: p}
		out[i].num, out[i].isNum = parseNumber(p)
	}
	return out
}

// parseNumber reads a decimal integer with an optional leading minus.
// strconv.Atoi also takes a plus sign, which the format does not allow.
func parseNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// expandTabs joins segments the way the original FORTRAN printed them,
// with tab stops every eight columns.
func expandTabs(fields []field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fields[0].raw)
	for _, f := range fields[1:] {
		b.WriteString(strings.Repeat(" ", 8-b.Len()%8))
		b.WriteString(f.raw)
	}
	return b.String()
}

func appendLine(dst *string, text string) {
	if *dst == "" {
		*dst = text
		return
	}
	*dst += "\n" + text
}

type lastTravel struct {
	room  int
	verbs []int
}

type parser struct {
	scanner    *bufio.Scanner
	line       int
	section    int
	w          *world.World
	last       lastTravel
	currentObj *world.Obj
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*world.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open world data: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a complete data stream. A partially parsed World is never
// returned.
func Load(r io.Reader) (*world.World, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p := &parser{scanner: scanner, w: world.New()}
	for {
		fields, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if !fields[0].isNum {
			return nil, p.malformed("non-numeric section header %q", fields[0].raw)
		}
		if fields[0].num == 0 {
			break
		}
		if err := p.readSection(fields[0].num); err != nil {
			return nil, err
		}
	}
	return p.w, nil
}

// next returns the fields of the next non-blank line.
func (p *parser) next() ([]field, bool, error) {
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimRight(p.scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return parseFields(line), true, nil
	}
	if err := p.scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read world data: %w", err)
	}
	return nil, false, nil
}

func (p *parser) malformed(format string, args ...any) error {
	return &MalformedDataError{Line: p.line, Section: p.section, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) readSection(n int) error {
	p.section = n
	defer func() { p.section = 0 }()

	handler := p.sectionHandler(n)
	for {
		fields, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return p.malformed("missing section terminator")
		}
		if !fields[0].isNum {
			return p.malformed("non-numeric leading field %q", fields[0].raw)
		}
		if fields[0].num == -1 {
			return nil
		}
		if handler == nil {
			continue
		}
		if err := handler(fields); err != nil {
			return err
		}
	}
}

func (p *parser) sectionHandler(n int) func([]field) error {
	switch n {
	case 1:
		return p.longDescription
	case 2:
		return p.shortDescription
	case 3:
		return p.travel
	case 4:
		return p.vocabulary
	case 5:
		return p.objectMessage
	case 6:
		return p.message
	case 7:
		return p.placement
	case 9:
		return p.roomBits
	case 10:
		return p.classMessage
	case 11:
		return p.hint
	case 12:
		return p.magicMessage
	default:
		// Section 8 and any unknown section are consumed without effect.
		return nil
	}
}

func (p *parser) room(n int) *world.Room {
	r, ok := p.w.Rooms[n]
	if !ok {
		r = &world.Room{Number: n}
		p.w.Rooms[n] = r
	}
	return r
}

func (p *parser) object(n int) *world.Obj {
	o, ok := p.w.Objects[n]
	if !ok {
		o = &world.Obj{Number: n, Messages: make(map[int]string)}
		p.w.Objects[n] = o
	}
	return o
}

func (p *parser) text(fields []field) (string, error) {
	if len(fields) < 2 {
		return "", p.malformed("line %d has no text", fields[0].num)
	}
	return expandTabs(fields[1:]), nil
}

func (p *parser) longDescription(fields []field) error {
	text, err := p.text(fields)
	if err != nil {
		return err
	}
	room := p.room(fields[0].num)
	if strings.HasPrefix(text, blankMarker) {
		return nil
	}
	appendLine(&room.LongDescription, text)
	return nil
}

func (p *parser) shortDescription(fields []field) error {
	text, err := p.text(fields)
	if err != nil {
		return err
	}
	room := p.room(fields[0].num)
	if strings.HasPrefix(text, blankMarker) {
		return nil
	}
	appendLine(&room.ShortDescription, text)
	return nil
}

func (p *parser) message(fields []field) error {
	text, err := p.text(fields)
	if err != nil {
		return err
	}
	n := fields[0].num
	msg := p.w.Messages[n]
	appendLine(&msg, text)
	p.w.Messages[n] = msg
	return nil
}

func (p *parser) magicMessage(fields []field) error {
	text, err := p.text(fields)
	if err != nil {
		return err
	}
	n := fields[0].num
	msg := p.w.MagicMessages[n]
	appendLine(&msg, text)
	p.w.MagicMessages[n] = msg
	return nil
}

func (p *parser) classMessage(fields []field) error {
	text, err := p.text(fields)
	if err != nil {
		return err
	}
	p.w.ClassMessages = append(p.w.ClassMessages, world.ClassMessage{Score: fields[0].num, Text: text})
	return nil
}

func (p *parser) vocabulary(fields []field) error {
	if len(fields) < 2 {
		return p.malformed("vocabulary entry %d has no text", fields[0].num)
	}
	n := fields[0].num
	kind := n / 1000
	if n < 0 || kind > int(world.Special) {
		return p.malformed("vocabulary number %d out of range", n)
	}
	text := world.ExpandWord(strings.ToLower(strings.TrimSpace(fields[1].raw)))
	word := world.Word{Text: text, Kind: world.WordKind(kind), Number: n}
	p.w.Vocabulary[text] = word
	short := world.Truncate(text)
	if _, exists := p.w.Vocabulary[short]; !exists {
		p.w.Vocabulary[short] = word
	}

	if word.Kind != world.Noun {
		return nil
	}
	objNum := word.Value()
	obj := p.object(objNum)
	if !slices.Contains(obj.Names, text) {
		obj.Names = append(obj.Names, text)
	}
	obj.IsTreasure = objNum >= world.FirstTreasure
	// The first object registered under a name is its default.
	for _, name := range []string{text, short} {
		if _, exists := p.w.ObjectNames[name]; !exists {
			p.w.ObjectNames[name] = objNum
		}
		p.index(name, objNum)
	}
	return nil
}

func (p *parser) index(name string, objNum int) {
	if slices.Contains(p.w.NameIndex[name], objNum) {
		return
	}
	p.w.NameIndex[name] = append(p.w.NameIndex[name], objNum)
}

func (p *parser) objectMessage(fields []field) error {
	text, err := p.text(fields)
	if err != nil {
		return err
	}
	n := fields[0].num
	if n >= 1 && n <= 99 {
		p.currentObj = p.object(n)
		p.currentObj.InventoryMessage = text
		return nil
	}
	if p.currentObj == nil {
		return p.malformed("object state message %d before any object", n)
	}
	if strings.HasPrefix(text, blankMarker) {
		text = ""
	}
	state := n / 100
	if existing, ok := p.currentObj.Messages[state]; ok {
		p.currentObj.Messages[state] = existing + "\n" + text
		return nil
	}
	p.currentObj.Messages[state] = text
	return nil
}

func (p *parser) placement(fields []field) error {
	if len(fields) < 2 || !fields[1].isNum {
		return p.malformed("object placement %d has no room", fields[0].num)
	}
	obj := p.object(fields[0].num)
	if room := fields[1].num; room != 0 {
		obj.InitialRooms = append(obj.InitialRooms, room)
	}
	if len(fields) > 2 && fields[2].isNum {
		switch fixed := fields[2].num; {
		case fixed == -1:
			obj.IsFixed = true
		case fixed > 0:
			obj.InitialRooms = append(obj.InitialRooms, fixed)
		}
	}
	return nil
}

func (p *parser) roomBits(fields []field) error {
	bit := fields[0].num
	for _, f := range fields[1:] {
		if !f.isNum {
			return p.malformed("room flag %d lists non-numeric room %q", bit, f.raw)
		}
		room := p.room(f.num)
		switch bit {
		case 0:
			room.IsLight = true
		case 1:
			room.Liquid = world.Water
		case 2:
			room.Liquid = world.Oil
		case 3:
			room.IsForbiddenToPirate = true
		default:
			h := p.hintFor(bit)
			h.Rooms = append(h.Rooms, f.num)
			room.HintNumber = bit
		}
	}
	return nil
}

func (p *parser) hintFor(n int) *world.Hint {
	h, ok := p.w.Hints[n]
	if !ok {
		h = &world.Hint{Number: n}
		p.w.Hints[n] = h
	}
	return h
}

func (p *parser) hint(fields []field) error {
	if len(fields) < 5 {
		return p.malformed("hint %d needs five fields", fields[0].num)
	}
	for _, f := range fields[1:5] {
		if !f.isNum {
			return p.malformed("hint %d has non-numeric field %q", fields[0].num, f.raw)
		}
	}
	h := p.hintFor(fields[0].num)
	h.TurnsNeeded = fields[1].num
	h.Penalty = fields[2].num
	h.Question = p.w.Messages[fields[3].num]
	h.Answer = p.w.Messages[fields[4].num]
	return nil
}
