/*
Package radix converts non-negative integers between textual representations
in radices 2 through 36.

A Value pairs a canonical digit string with the radix it is written in. Digits
are 0-9 followed by A-Z for digit values 10 to 35; lowercase input is accepted
and stored as uppercase. Magnitudes are bounded by uint64.

	v, err := radix.Parse("deadbeef", 16)
	if err != nil {
		return err
	}
	b32, err := v.WithRadix(32) // "3FARFNF"

Values are immutable and safe for concurrent use.

*/
package radix
