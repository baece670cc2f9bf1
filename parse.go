package bigint

import (
	"strings"
	"unicode"

	"github.com/calebcase/oops"

	"github.com/AdamMil/AdamMil.net-sub011/numstyle"
)

// Flags selects which tokens Parse accepts.
type Flags uint

const (
	AllowLeadingWhite Flags = 1 << iota
	AllowTrailingWhite
	AllowLeadingSign
	AllowTrailingSign
	AllowParentheses
	AllowGroupSeparators
	AllowDecimalPoint
	AllowExponent
	AllowCurrencySymbol
	AllowPercent
	AllowHex
)

// Composite styles.
const (
	StyleInteger  = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	StyleNumber   = StyleInteger | AllowTrailingSign | AllowGroupSeparators | AllowDecimalPoint
	StyleCurrency = StyleNumber | AllowParentheses | AllowCurrencySymbol
	StyleHex      = StyleInteger | AllowHex
	StyleAny      = StyleCurrency | AllowExponent | AllowPercent | AllowHex
)

// Parse converts s to an integer under the given flags and style. A nil
// style means the invariant style.
//
// The scanner extracts a sign, the significant digits, and a base-10 scale
// (decimal point digits lower it, an exponent raises or lowers it, percent
// and permille tokens lower it by 2 and 3). The value is rebuilt from
// digit chunks of at most nine digits and then multiplied or divided by
// the resulting power of ten; division truncates toward zero, so "1.5"
// parses to 1. Unrecognized input fails with ErrFormat and results past
// MaxBitLen fail with ErrOverflow.
func Parse(s string, flags Flags, style *numstyle.Style) (_ Int, err error) {
	defer Error.WrapP(&err)

	if style == nil {
		style = numstyle.Invariant()
	}
	p := &parser{src: s, flags: flags, style: style}
	return p.run()
}

// ParseString converts s under StyleAny and the invariant style.
func ParseString(s string) (Int, error) {
	return Parse(s, StyleAny, nil)
}

// MustParse is ParseString, panicking on error. Intended for constants.
func MustParse(s string) Int {
	z, err := ParseString(s)
	if err != nil {
		panic("bigint: MustParse(" + s + "): " + err.Error())
	}
	return z
}

type parser struct {
	src   string
	pos   int
	flags Flags
	style *numstyle.Style

	words     []uint32
	chunk     uint32
	chunkLen  int
	scale     int64
	neg       bool
	signSeen  bool
	paren     bool
	seenDigit bool
}

func (p *parser) allow(f Flags) bool { return p.flags&f != 0 }

func (p *parser) rest() string { return p.src[p.pos:] }

// eat consumes tok at the current position when it matches.
func (p *parser) eat(tok string) bool {
	if tok != "" && strings.HasPrefix(p.rest(), tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) eatSpace() bool {
	r := p.rest()
	trimmed := strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(trimmed) == len(r) {
		return false
	}
	p.pos += len(r) - len(trimmed)
	return true
}

func (p *parser) run() (Int, error) {
	p.head()

	var err error
	if p.allow(AllowHex) && (p.eat("0x") || p.eat("0X")) {
		err = p.hexDigits()
	} else {
		err = p.decDigits()
	}
	if err != nil {
		return Int{}, err
	}

	p.tail()
	if !p.seenDigit || p.pos != len(p.src) || p.paren {
		return Int{}, oops.Trace(ErrFormat)
	}
	return p.finish()
}

// head consumes leading whitespace, sign tokens, an opening parenthesis,
// and a currency symbol, in any order.
func (p *parser) head() {
	for {
		switch {
		case p.allow(AllowLeadingWhite) && p.eatSpace():
		case p.allow(AllowParentheses) && !p.paren && p.eat("("):
			p.paren = true
			p.neg = true
		case p.allow(AllowLeadingSign) && !p.signSeen && p.eat(p.style.NegativeSign):
			p.neg = true
			p.signSeen = true
		case p.allow(AllowLeadingSign) && !p.signSeen && p.eat(p.style.PositiveSign):
			p.signSeen = true
		case p.allow(AllowCurrencySymbol) && p.eat(p.style.CurrencySymbol):
		default:
			return
		}
	}
}

// tail consumes trailing whitespace, a trailing sign, the closing
// parenthesis, a currency symbol, and percent/permille tokens.
func (p *parser) tail() {
	for {
		switch {
		case p.allow(AllowTrailingWhite) && p.eatSpace():
		case p.paren && p.eat(")"):
			p.paren = false
		case p.allow(AllowTrailingSign) && !p.signSeen && p.eat(p.style.NegativeSign):
			p.neg = true
			p.signSeen = true
		case p.allow(AllowTrailingSign) && !p.signSeen && p.eat(p.style.PositiveSign):
			p.signSeen = true
		case p.allow(AllowCurrencySymbol) && p.eat(p.style.CurrencySymbol):
		case p.allow(AllowPercent) && p.eat(p.style.PerMilleSymbol):
			p.scale -= 3
		case p.allow(AllowPercent) && p.eat(p.style.PercentSymbol):
			p.scale -= 2
		default:
			return
		}
	}
}

func (p *parser) pushDigit(d uint32) error {
	p.chunk = p.chunk*10 + d
	p.chunkLen++
	if p.chunkLen == 9 {
		if err := p.flush(); err != nil {
			return err
		}
	}
	p.seenDigit = true
	return nil
}

func (p *parser) flush() error {
	if p.chunkLen > 0 {
		p.words = magMulAddWord(p.words, pow10w[p.chunkLen], p.chunk)
		p.chunk, p.chunkLen = 0, 0
		if len(p.words) > maxWords+1 {
			return oops.Trace(ErrOverflow)
		}
	}
	return nil
}

// decDigits scans digits, group separators, a decimal point, and an
// exponent. Digits are accumulated in chunks of at most nine so the chunk
// math stays within a word pair.
func (p *parser) decDigits() error {
	seenPoint := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9':
			if err := p.pushDigit(uint32(c - '0')); err != nil {
				return err
			}
			if seenPoint {
				p.scale--
			}
			p.pos++
		case !seenPoint && p.seenDigit && p.allow(AllowGroupSeparators) && p.eat(p.style.GroupSeparator):
		case !seenPoint && p.allow(AllowDecimalPoint) && p.eat(p.style.DecimalSeparator):
			seenPoint = true
		default:
			if err := p.flush(); err != nil {
				return err
			}
			return p.exponent()
		}
	}
	return p.flush()
}

// exponent scans an optional scientific exponent and folds it into the
// scale.
func (p *parser) exponent() error {
	if !p.allow(AllowExponent) || !p.seenDigit {
		return nil
	}
	sym := p.style.ExponentSymbol
	if !p.eat(sym) && !p.eat(strings.ToUpper(sym)) {
		return nil
	}
	expNeg := false
	switch {
	case p.eat(p.style.NegativeSign):
		expNeg = true
	case p.eat(p.style.PositiveSign):
	}
	var v int64
	seen := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int64(c-'0')
		if v > MaxBitLen {
			return oops.Trace(ErrOverflow)
		}
		seen = true
		p.pos++
	}
	if !seen {
		return oops.Trace(ErrFormat)
	}
	if expNeg {
		v = -v
	}
	p.scale += v
	return nil
}

func (p *parser) hexDigits() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return nil
		}
		p.words = magMulAddWord(p.words, 16, d)
		if len(p.words) > maxWords+1 {
			return oops.Trace(ErrOverflow)
		}
		p.seenDigit = true
		p.pos++
	}
	return nil
}

// finish applies the accumulated power-of-ten scale and canonicalizes.
func (p *parser) finish() (Int, error) {
	words := p.words
	switch {
	case len(words) == 0:
	case p.scale > 0:
		// 10^s needs more than 3s bits, so past this line the result
		// cannot fit.
		if magBitLen(words)+3*p.scale > MaxBitLen {
			return Int{}, oops.Trace(ErrOverflow)
		}
		for s := p.scale; s > 0; {
			k := s
			if k > 9 {
				k = 9
			}
			words = magMulAddWord(words, pow10w[k], 0)
			if len(words) > maxWords+1 {
				return Int{}, oops.Trace(ErrOverflow)
			}
			s -= k
		}
	case p.scale < 0:
		for s := -p.scale; s > 0 && len(words) > 0; {
			k := s
			if k > 9 {
				k = 9
			}
			words, _ = magDivModWordInPlace(words, pow10w[k])
			s -= k
		}
	}
	return makeInt(words, p.neg)
}
