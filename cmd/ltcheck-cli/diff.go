package main

import "github.com/sergi/go-diff/diffmatchpatch"

// diffText renders the changes between original and corrected with ANSI
// colours: deletions red, insertions green.
func diffText(original, corrected string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, corrected, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// changes lists the "old → new" pairs between original and corrected.
func changes(original, corrected string) []string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(original, corrected, false))

	var out []string
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			continue
		case diffmatchpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				out = append(out, d.Text+" → "+diffs[i+1].Text)
				i++
				continue
			}
			out = append(out, d.Text+" → ")
		case diffmatchpatch.DiffInsert:
			out = append(out, " → "+d.Text)
		}
	}
	return out
}
