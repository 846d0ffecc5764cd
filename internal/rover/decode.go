package rover

import "strings"

// Decode maps 'N', 'E', 'S' and 'W' to directions. Any other rune is dropped.
func Decode(commands []rune) []Cardinal {
	out := make([]Cardinal, 0, len(commands))
	for _, c := range commands {
		switch c {
		case 'N':
			out = append(out, North)
		case 'E':
			out = append(out, East)
		case 'S':
			out = append(out, South)
		case 'W':
			out = append(out, West)
		}
	}
	return out
}

func DecodeString(s string) []Cardinal {
	return Decode([]rune(s))
}

func Encode(directions []Cardinal) string {
	var b strings.Builder
	b.Grow(len(directions))
	for _, d := range directions {
		b.WriteString(d.String())
	}
	return b.String()
}
