// Package expand provides the two pointtopoint.ExpandPolicy
// implementations: Sequential, which expands one cell at a time, and
// JumpPoint, which compresses straight runs using Jump Point Search.
package expand
