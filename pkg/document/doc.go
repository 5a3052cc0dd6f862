// Package document is the high-level entry point for rewriting JavaScript
// build-tool configuration files.
//
// A Document wraps one parsed configuration source and exposes the export
// object (`module.exports = {...}` or a bare top-level object), named
// option sections inside it, and the plugins array. Merge operations
// delegate to the rewrite package and mutate the parsed tree in place;
// Render regenerates source from the mutated tree.
//
// # Usage Example
//
//	doc, err := document.Load("webpack.config.js")
//	if err != nil {
//		return err
//	}
//
//	opts := document.NewObject().
//		Set("filename", document.String("[name].bundle.js"))
//	if _, err := doc.MergeSection("output", opts, true); err != nil {
//		return err
//	}
//
//	if _, err := doc.AddPlugin("webpack.optimize.DedupePlugin", nil); err != nil {
//		return err
//	}
//
//	return doc.Save("webpack.config.js")
//
// Documents are not safe for concurrent use; every operation assumes
// exclusive, sequential access to the underlying tree.
package document
