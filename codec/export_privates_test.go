// SPDX-License-Identifier: MIT

package codec

// AtoiPrefix_TestOnly exposes the permissive token reader.
func AtoiPrefix_TestOnly(tok string) int { return atoiPrefix([]byte(tok)) }

// CountFields_TestOnly exposes the allocation-free token counter.
func CountFields_TestOnly(line string) int { return countFields([]byte(line)) }
