// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msgs defines some test messages for jlib unit tests.
// Lines are separated by "\n".
package msgs

// Message1 is a test message with non-ASCII characters.
const Message1 = `Die Würde des Menschen ist unantastbar. Sie zu achten und zu schützen
ist Verpflichtung aller staatlichen Gewalt. — Grundgesetz, Artikel 1
Ça coûte 12,50 € à Paris; ½ kostet nur die Hälfte.`

// Message2 is a test message with long lines, equal signs and
// whitespace at the end of lines.
const Message2 = `The quoted-printable encoding is intended to represent data that largely consists of octets that correspond to printable characters in the US-ASCII character set.
a=b+c; x == y 	
	indented with a tab, followed by trailing spaces   
.
From the beginning of a line`

// All contains all test messages.
var All = []string{Message1, Message2}
