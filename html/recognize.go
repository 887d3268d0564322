package html

// nameBufCap bounds the small tag/attribute name buffers. Names longer than
// this are treated as belonging to a generic, unrecognized element or
// attribute: no special handling, but the bytes still stream through
// untouched.
const nameBufCap = 16

// nameBuf is a small, fixed-capacity, ASCII-lowercased accumulator used for
// tag and attribute name recognition. It never allocates past its capacity;
// once full it simply stops accepting bytes and reports overflow so callers
// fall back to generic handling.
type nameBuf struct {
	b        [nameBufCap]byte
	n        int
	overflow bool
}

func (nb *nameBuf) reset() {
	nb.n = 0
	nb.overflow = false
}

func (nb *nameBuf) push(c byte) {
	if nb.n >= nameBufCap {
		nb.overflow = true
		return
	}
	nb.b[nb.n] = lowerByte(c)
	nb.n++
}

func (nb *nameBuf) bytes() []byte {
	return nb.b[:nb.n]
}

func (nb *nameBuf) is(name string) bool {
	return !nb.overflow && string(nb.bytes()) == name
}

// scriptTypes are the recognized `type` attribute values on <script> that
// still get treated as ordinary JavaScript for minification purposes.
var scriptTypes = []string{"application/javascript", "text/javascript", "module"}

// styleTypes are the recognized `type` attribute values on <style>.
var styleTypes = []string{"text/css"}

// recognizedMediaType reports whether the lowercased, trimmed value is
// either absent/empty or one of the tag's recognized mediatypes.
func recognizedMediaType(kind rawKind, value []byte) bool {
	if len(value) == 0 {
		return true
	}
	var candidates []string
	switch kind {
	case rawKindScript:
		candidates = scriptTypes
	case rawKindStyle:
		candidates = styleTypes
	default:
		return true
	}
	lower := asciiLower(value)
	for _, c := range candidates {
		if string(lower) == c {
			return true
		}
	}
	return false
}

func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = lowerByte(c)
	}
	return out
}

// isSpecialAttr reports whether the (already-lowercased) attribute name gets
// the trim+collapse whitespace treatment: always for class, and for type
// only when the owning tag is script or style.
func isSpecialAttr(attrName []byte, tagIsScriptOrStyle bool) bool {
	switch string(attrName) {
	case "class":
		return true
	case "type":
		return tagIsScriptOrStyle
	default:
		return false
	}
}

// trimCollapseWhitespace trims leading/trailing whitespace and collapses
// internal whitespace runs to a single 0x20, per the attribute-value
// whitespace normalization rule applied to class/type attribute values.
func trimCollapseWhitespace(b []byte) []byte {
	start := 0
	for start < len(b) && isWhitespace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isWhitespace(b[end-1]) {
		end--
	}
	b = b[start:end]
	out := make([]byte, 0, len(b))
	inWS := false
	for _, c := range b {
		if isWhitespace(c) {
			inWS = true
			continue
		}
		if inWS {
			out = append(out, ' ')
			inWS = false
		}
		out = append(out, c)
	}
	return out
}

// rawCloseName returns the lowercase closing tag name expected for kind.
func rawCloseName(kind rawKind) string {
	switch kind {
	case rawKindScript:
		return "script"
	case rawKindStyle:
		return "style"
	case rawKindCode:
		return "code"
	case rawKindPre:
		return "pre"
	case rawKindTextarea:
		return "textarea"
	default:
		return ""
	}
}
