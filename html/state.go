package html

// state is the tokenizer's current syntactic context. It is advanced one
// byte at a time by (*Minifier).step; there is no lookahead beyond the small
// name/value buffers and the UTF-8 continuation tail.
type state int

const (
	stateText state = iota
	stateTagStart
	stateTagName
	stateEndTagSlash
	stateEndTagName
	stateInTag
	stateAttrName
	stateAttrEq
	stateAttrValueUnquoted
	stateAttrValueQuoted
	stateSelfCloseSlash

	// "<!" discrimination: comment vs doctype vs bogus markup.
	stateMarkupBang
	stateCommentDash
	stateComment
	stateDoctypeMatch
	stateDoctype
	stateBogusBang

	stateRawBody
	stateRawPassthrough
	stateRawCloseScan
)

// rawKind identifies which element's body is being buffered or passed
// through verbatim.
type rawKind int

const (
	rawKindNone rawKind = iota
	rawKindScript
	rawKindStyle
	rawKindCode
	rawKindPre
	rawKindTextarea
)

// tagKind distinguishes the open/close flavor of the tag currently being
// tokenized; it only matters up to the point the tag is committed.
type tagKind int

const (
	tagKindOpen tagKind = iota
	tagKindClose
)
