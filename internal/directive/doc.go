// Package directive extracts the inline resolution markers a user can attach
// to dimension arguments of a branching experiment.
//
// Three markers are recognized, each immediately after the dimension name:
//
//	--lr~+loguniform(1e-5,1)   append: keep lr in the child space and add it
//	--momentum~-               drop: remove momentum from the child space
//	--lr~>learning_rate        rename: parent lr becomes child learning_rate
//
// Parse rewrites append arguments into plain dimension arguments
// ("--lr~loguniform(1e-5,1)") and removes drop and rename arguments, so the
// corrected list can be handed to the space builder. The extracted
// directives are replayed against the conflict resolver once conflicts are
// known.
package directive
