// Package notation implements the LLSD "notation" encoding: a compact,
// human-readable token form. spec.md leaves the exact grammar an open
// question since the source's notation parser and formatter are empty
// stubs; this package implements the grammar commonly used by other LLSD
// notation encoders (grounded choices are recorded in DESIGN.md):
//
//	!                undef
//	1 / 0            boolean true/false
//	i<int>           integer, decimal ASCII, e.g. i42
//	r<real>          real, decimal ASCII, e.g. r1.5
//	u<uuid>          UUID, dashed hex, e.g. u01020304-0506-0708-0900-010203040506
//	d"<iso8601>"     date, quoted ISO-8601
//	s(<len>)"<str>"  string, byte length prefix then quoted payload
//	l"<uri>"         URI, quoted
//	b(<len>)"<b64>"  binary, default base64, length-prefixed quoted payload
//	b16"<hex>"       binary, base16
//	b64"<b64>"       binary, base64
//	b85"<b85>"       binary, base85
//	[v,v,...]        array, comma-separated
//	{'k':v,'k':v}    map, single-quoted keys, colon, comma-separated
//
// Whitespace is skipped between tokens and preserved inside quoted
// payloads. Quoted payloads escape `\` and the quote character with a
// leading backslash; no other escapes are recognized.
package notation
