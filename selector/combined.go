package selector

// CSS combinator tokens accepted by Combine. Any other token is rendered as
// given - Combine does not validate it.
const (
	Descendant   = " "
	Child        = ">"
	NextSibling  = "+"
	LaterSibling = "~"
	Column       = "||"
)

// Combined joins two selector expressions with a CSS combinator. It is
// created by Combine, immutable afterwards, and renders on demand by plain
// recursive descent over its operands.
type Combined struct {
	left  Selector
	op    string
	right Selector
}

// String renders "left op right" with single spaces around the combinator
// token. With the descendant combinator (itself a single space) this yields
// three spaces between the operands - kept as is for compatibility with
// long-standing output.
func (c *Combined) String() string {
	return c.left.String() + " " + c.op + " " + c.right.String()
}

// Left returns the left operand.
func (c *Combined) Left() Selector {
	return c.left
}

// Right returns the right operand.
func (c *Combined) Right() Selector {
	return c.right
}

// Op returns the combinator token.
func (c *Combined) Op() string {
	return c.op
}

// Result renders the combined selector or reports the first violation
// recorded on any operand, left operand first.
func (c *Combined) Result() (string, error) {
	if _, err := c.left.Result(); err != nil {
		return "", err
	}
	if _, err := c.right.Result(); err != nil {
		return "", err
	}
	return c.String(), nil
}
