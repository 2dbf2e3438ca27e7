/*
Package script reads resolution scripts: YAML or JSONC documents that resolve
a branch's conflicts in batch.

	version: "1"
	branch: exp-v2
	reset: anyMissing
	add: [new, "db.*"]
	remove: missing
	rename:
	  - old: lr
	    new: learning_rate

Entries are applied to a branch session in a fixed order: reset, add,
remove, rename, then the branch name. Each add, remove and reset entry
accepts the same names, keywords and wildcards as the session API.
*/
package script
