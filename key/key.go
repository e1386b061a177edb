// Package key provides canonical key-sequence notation.
//
// A key spec is Vim-style notation: plain runes run together, special keys
// and modified keys in angle brackets ("dw", "<C-x><C-s>", "gg<CR>").
// Canonicalize normalizes a spec so that two spellings of the same sequence
// compare equal as strings ("<c-X>" and "<C-x>" both become "<C-x>"). The
// binding engine keys its tables on canonical strings.
package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidSpec is returned for a key spec that cannot be canonicalized.
var ErrInvalidSpec = errors.New("invalid key specification")

// namedKeys maps lower-cased bracketed key names to canonical spellings.
var namedKeys = map[string]string{
	"cr":        "CR",
	"return":    "CR",
	"enter":     "CR",
	"esc":       "Esc",
	"escape":    "Esc",
	"tab":       "Tab",
	"bs":        "BS",
	"backspace": "BS",
	"del":       "Del",
	"delete":    "Del",
	"ins":       "Ins",
	"insert":    "Ins",
	"space":     "Space",
	"lt":        "lt",
	"bar":       "Bar",
	"bslash":    "Bslash",
	"nop":       "Nop",
	"leader":    "Leader",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pgup":      "PageUp",
	"pagedown":  "PageDown",
	"pgdn":      "PageDown",
	"f1":        "F1",
	"f2":        "F2",
	"f3":        "F3",
	"f4":        "F4",
	"f5":        "F5",
	"f6":        "F6",
	"f7":        "F7",
	"f8":        "F8",
	"f9":        "F9",
	"f10":       "F10",
	"f11":       "F11",
	"f12":       "F12",
}

// Canonicalize normalizes a key spec to canonical form. It is pure and
// deterministic; equal sequences always canonicalize to equal strings.
//
// A "<" without a matching ">" is treated as a literal "<" rune, so
// malformed specs like "<a" survive as themselves.
func Canonicalize(spec string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(spec); {
		if spec[i] == '<' {
			end := strings.IndexByte(spec[i:], '>')
			if end < 0 {
				// No closing bracket: literal "<".
				sb.WriteByte('<')
				i++
				continue
			}
			tok, err := canonicalToken(spec[i+1 : i+end])
			if err != nil {
				return "", err
			}
			sb.WriteString(tok)
			i += end + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(spec[i:])
		sb.WriteRune(r)
		i += size
	}
	return sb.String(), nil
}

// MustCanonicalize canonicalizes a spec and panics on error.
// Use only for known-valid specs in initialization code.
func MustCanonicalize(spec string) string {
	s, err := Canonicalize(spec)
	if err != nil {
		panic("key: " + err.Error())
	}
	return s
}

// canonicalToken normalizes the inside of one <...> token.
func canonicalToken(inner string) (string, error) {
	if inner == "" {
		return "", fmt.Errorf("%w: empty bracketed token", ErrInvalidSpec)
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	// "<->" and "<C-->" leave an empty key part; the hyphen is the key.
	if keyPart == "" && len(modParts) > 0 {
		keyPart = "-"
		modParts = modParts[:len(modParts)-1]
	}

	var ctrl, shift, alt, meta bool
	for _, p := range modParts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			ctrl = true
		case "s":
			shift = true
		case "a":
			alt = true
		case "m", "d":
			meta = true
		default:
			return "", fmt.Errorf("%w: unknown modifier %q in <%s>", ErrInvalidSpec, p, inner)
		}
	}

	name, isNamed := namedKeys[strings.ToLower(keyPart)]
	if !isNamed {
		if utf8.RuneCountInString(keyPart) != 1 {
			return "", fmt.Errorf("%w: unknown key <%s>", ErrInvalidSpec, inner)
		}
		r, _ := utf8.DecodeRuneInString(keyPart)
		// Ctrl combinations fold to lowercase; <C-X> and <C-x> are one key.
		if ctrl {
			r = unicode.ToLower(r)
		}
		if !ctrl && !shift && !alt && !meta {
			// A bracketed plain rune is just the rune.
			return string(r), nil
		}
		name = string(r)
	}

	if !ctrl && !shift && !alt && !meta {
		return "<" + name + ">", nil
	}

	var sb strings.Builder
	sb.WriteByte('<')
	if ctrl {
		sb.WriteString("C-")
	}
	if shift {
		sb.WriteString("S-")
	}
	if alt {
		sb.WriteString("A-")
	}
	if meta {
		sb.WriteString("M-")
	}
	sb.WriteString(name)
	sb.WriteByte('>')
	return sb.String(), nil
}
