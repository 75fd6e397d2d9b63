// Package bptree implements an in-memory, ordered B+ tree index.
//
// Keys are any totally-ordered type; values are opaque. Leaves are chained
// left to right so range scans run in sorted order without revisiting
// internal nodes. The tree has no persistence, logging, or concurrency
// control of its own — those are the concern of whatever embeds it.
package bptree
