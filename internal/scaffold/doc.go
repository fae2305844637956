// Package scaffold instantiates embedded template sets into a target
// directory. It powers "nb create" and "nb plugin new", rendering both file
// contents and target paths with the collected answer context.
package scaffold
