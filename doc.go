/*
Package dd reads and writes .dd difficulty files, the chart format of a
four-lane rhythm game. A .dd file is INI-like text with four sections:

	[Metadata]
	Artist: Camellia
	Title: Exit This Earth's Atomosphere
	DiffName: Expert
	...

	[Difficulty]
	Speed: 1.5
	Health: 4.0
	Sensitivity: 2.0

	[HitObjects]
	1000,0,0,0
	1500,2,1,250

	[Events]
	0,0,1.0
	1,0,174.0
	2,8000,1

Metadata and Difficulty hold "Key: Value" pairs, HitObjects holds one note
per line and Events holds one timed event per line. Events is optional.

The API mirrors encoding/json:

	var d dd.Difficulty
	if err := dd.Unmarshal(data, &d); err != nil {
		// handle error
	}
	fmt.Println(d.FullName())

	out, err := dd.Marshal(&d)

ReadFile and WriteFile wrap the same calls for a path on disk. A
successful Unmarshal followed by Marshal and Unmarshal yields the same
Difficulty.

Decoding fails fast. The first problem is reported as one of the typed
errors of this package, each naming the section, key or line at fault:

	var typeErr *dd.FieldTypeError
	if errors.As(err, &typeErr) {
		fmt.Println(typeErr.Section, typeErr.Key)
	}

Events with unrecognized type codes are dropped by default. Pass
UnknownEvents(PreserveUnknownEvents) to keep them in
Difficulty.UnknownEvents, or UnknownEvents(RejectUnknownEvents) to fail
with an *UnknownEventError.

For tools that work on the section level, Parse returns the section tree
of a file and Format writes one back.
*/
package dd
