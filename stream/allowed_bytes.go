package stream

// AllowedBytes is a 256-entry membership table used as a ReadWhile predicate.
type AllowedBytes [256]bool

// Predefined byte classes.
var (
	Digits        = AllowedRange('0', '9')
	Letters       = AllowedRange('a', 'z').Union(AllowedRange('A', 'Z'))
	AlphaNumerics = Letters.Union(Digits)
	Whitespace    = NewAllowedBytes(' ', '\t', '\n', '\r', '\v', '\f')
	HexDigits     = Digits.Union(AllowedRange('a', 'f'), AllowedRange('A', 'F'))
)

// NewAllowedBytes returns a table holding exactly the given bytes.
func NewAllowedBytes(set ...byte) *AllowedBytes {
	a := new(AllowedBytes)
	for _, b := range set {
		a[b] = true
	}
	return a
}

// AllowedRange returns a table holding every byte in [lo, hi].
func AllowedRange(lo, hi byte) *AllowedBytes {
	a := new(AllowedBytes)
	for b := int(lo); b <= int(hi); b++ {
		a[b] = true
	}
	return a
}

// Union returns a new table holding the bytes of a and of every other table.
func (a *AllowedBytes) Union(others ...*AllowedBytes) *AllowedBytes {
	out := *a
	for _, o := range others {
		for i, ok := range o {
			if ok {
				out[i] = true
			}
		}
	}
	return &out
}

func (a *AllowedBytes) Contains(b byte) bool { return a[b] }

// ReadAllowed returns the run of allowed bytes at the head of the input. The
// run may end with the input.
func ReadAllowed(r Reader, allowed *AllowedBytes) ([]byte, error) {
	return r.ReadWhile(UntilEnd, allowed.Contains)
}

// ConsumeAllowed skips the run of allowed bytes at the head of the input.
func ConsumeAllowed(r Reader, allowed *AllowedBytes) error {
	return r.ConsumeWhile(UntilEnd, allowed.Contains)
}

// ConsumeSet skips every leading byte that belongs to set.
func ConsumeSet(r Reader, set ...byte) error {
	return ConsumeAllowed(r, NewAllowedBytes(set...))
}
