// Package bridge provides interop between the frozen containers and Apache
// Arrow arrays.
// This package implements:
// - zero-copy wrapping of a frozen Array as an arrow array (ToArrow)
// - adoption of an arrow values buffer into a frozen Array (FromArrow)
// - builder-based conversion for level-name sequences (SequenceToArrow)
//
// Sharing storage in both directions is safe because neither a frozen
// Array nor a constructed arrow array can write through the shared buffer.
package bridge
