/*
Package config manages configuration parsing and validation for markfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+ +---+--+    +---+--+  +---+--+
	| YAML | | JSON |    | HCL  |  | TOML |
	+------+ +------+    +------+  +------+

🎯 Purpose:
- Provides the built-in defaults (marker, extensions, excluded directories)
- Loads an optional config file on top of the defaults
- Validates the merged result before a run starts

🔄 Flow:
1. Start from Default()
2. Pick a parser by file extension and decode onto the defaults
3. Fill anything left empty and validate

Every format rejects unknown keys, so a typo in a key name is an error rather
than a silently ignored setting.

🔍 Example (.markfix.yaml):

	marker: "// MARK:"
	extensions: [".swift"]
	exclude_dirs: [DerivedData, build, Pods]
	exclude_patterns: ["Generated/**"]
	fail_fast: false
	jobs: 4
*/
package config
