/*
Package mark rewrites section-marker comments into their canonical form.

	// MARK: Label   ->  // MARK: - Label
	// MARK:Label    ->  // MARK: - Label
	// MARK: - Label     (unchanged)

Two rules run in a fixed order, each over the output of the previous one:

 1. missing_hyphen: marker, one space, a label character that is not a hyphen
 2. missing_space: marker directly followed by a label character

Only the marker and the first label character are rewritten, so the rest of the
line is preserved byte for byte. The match is lexical: a marker inside a string
literal is rewritten like any other.

🔍 Example:

	n, _ := mark.New(mark.DefaultMarker)
	res := n.Normalize(content)
	if res.WasModified {
		// write res.Modified back
	}
*/
package mark
