//go:build baremetal

package fmtx

import (
	"io"
	"os"

	"chipbanner-go/x/strconvx"
)

// DefaultOutput is used by Print/Printf. Swap it for a UART writer from
// the platform bootstrap if the default console is not wanted.
var DefaultOutput io.Writer = os.Stdout

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var b builder
	b.format(format, a...)
	return w.Write(b.buf)
}

func Sprint(a ...any) string {
	var b builder
	for i, v := range a {
		// fmt.Sprint only spaces operands when neither side is a string.
		if i > 0 {
			_, prevStr := a[i-1].(string)
			_, curStr := v.(string)
			if !prevStr && !curStr {
				b.byte(' ')
			}
		}
		b.any(v)
	}
	return string(b.buf)
}

func Print(a ...any) (int, error) {
	return io.WriteString(DefaultOutput, Sprint(a...))
}

// --- Internals: tiny formatter subset ---
// Supports %s %d %v %% and a zero-pad/width on %d. Anything else prints
// literally so mistakes stay visible on the console.

type builder struct{ buf []byte }

func (b *builder) byte(c byte)  { b.buf = append(b.buf, c) }
func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) any(v any) {
	switch x := v.(type) {
	case string:
		b.str(x)
	case []byte:
		b.buf = append(b.buf, x...)
	case error:
		b.str(x.Error())
	case bool:
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
	default:
		if n, ok := toI64(v); ok {
			b.str(strconvx.FormatInt(n, 10))
			return
		}
		if u, ok := v.(uint64); ok {
			b.str(strconvx.FormatUint(u, 10))
			return
		}
		b.str("<?>")
	}
}

func toI64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	}
	return 0, false
}

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			b.byte(c)
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b.byte('%')
			i++
			continue
		}
		zero := false
		if i < len(format) && format[i] == '0' {
			zero = true
			i++
		}
		width := 0
		for i < len(format) && '0' <= format[i] && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) || ai >= len(args) {
			return
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's', 'v':
			b.any(arg)
		case 'd':
			var s string
			if n, ok := toI64(arg); ok {
				s = strconvx.FormatInt(n, 10)
			} else if u, ok := arg.(uint64); ok {
				s = strconvx.FormatUint(u, 10)
			} else {
				s = "<?>"
			}
			pad := byte(' ')
			if zero {
				pad = '0'
			}
			for j := len(s); j < width; j++ {
				b.byte(pad)
			}
			b.str(s)
		default:
			b.byte('%')
			b.byte(verb)
		}
	}
}
