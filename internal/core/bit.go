package core

// Bit is a single binary digit. It is the extension bit of a span: the value
// implicitly repeated past its last stored digit.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// BitOf converts a boolean into a Bit.
func BitOf(b bool) Bit {
	if b {
		return One
	}
	return Zero
}

// Bool reports whether b is One.
func (b Bit) Bool() bool { return b != Zero }

// Toggled returns the other bit.
func (b Bit) Toggled() Bit { return b ^ One }

func (b Bit) String() string {
	if b.Bool() {
		return "1"
	}
	return "0"
}

// Sign is the sign of a signed magnitude.
type Sign uint8

const (
	Plus Sign = iota
	Minus
)

// SignOf returns Minus when negative is true.
func SignOf(negative bool) Sign {
	if negative {
		return Minus
	}
	return Plus
}

// Toggled returns the opposite sign.
func (s Sign) Toggled() Sign { return s ^ 1 }

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// Signum is the outcome of a three-way comparison.
type Signum int8

const (
	Less Signum = -1
	Same Signum = 0
	More Signum = 1
)

// SignumOf maps the result of cmp.Compare style functions onto a Signum.
func SignumOf(c int) Signum {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return More
	default:
		return Same
	}
}

// Negated flips Less and More.
func (s Signum) Negated() Signum { return -s }

func (s Signum) String() string {
	switch s {
	case Less:
		return "less"
	case More:
		return "more"
	default:
		return "same"
	}
}

// Signedness selects how the most significant bit of a value is read.
type Signedness uint8

const (
	Unsigned Signedness = iota
	Signed
)

// IsSigned reports whether s is Signed.
func (s Signedness) IsSigned() bool { return s == Signed }

func (s Signedness) String() string {
	if s == Signed {
		return "signed"
	}
	return "unsigned"
}
