package filesystem

import "strconv"

// UnixPermissions holds the raw numeric mode of a filesystem object and
// knows how to render it symbolically and in octal.
type UnixPermissions struct {
	mode uint32
}

func NewUnixPermissions(mode uint32) UnixPermissions {
	return UnixPermissions{mode: mode}
}

// Mode returns the raw numeric mode, type bits included.
func (p UnixPermissions) Mode() uint32 {
	return p.mode
}

// Symbolic renders the low nine permission bits in ls style, e.g.
// "rw-r--r--" for 644.
func (p UnixPermissions) Symbolic() string {
	const rwx = "rwxrwxrwx"
	var buf [9]byte
	for i := 0; i < 9; i++ {
		if p.mode&(1<<uint(8-i)) != 0 {
			buf[i] = rwx[i]
		} else {
			buf[i] = '-'
		}
	}
	return string(buf[:])
}

// Octal renders the low permission bits in base 8 with no padding, e.g.
// "644". Setuid, setgid and sticky bits are included; type bits are not.
func (p UnixPermissions) Octal() string {
	return strconv.FormatUint(uint64(p.mode&0o7777), 8)
}

// ParseOctal parses the output of Octal back into a numeric mode.
func ParseOctal(text string) (uint32, error) {
	value, err := strconv.ParseUint(text, 8, 32)
	if err != nil {
		return 0, err
	}
	return uint32(value), nil
}
