// Package mmap maps dataset files read-only into memory.
//
// The loader scans a CSV file once from start to end, so LocalStore maps it
// with AccessSequential and reads it through the mapping instead of issuing
// read syscalls.
package mmap
