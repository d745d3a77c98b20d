// Package pipeline provides a framework for executing analysis steps in sequence.
//
// Checking a binary is a strictly linear sequence of stages: reading the
// file, parsing the ELF program headers, classifying the segments, and
// evaluating the totals against the budgets. Each stage is implemented as a
// Step that receives the current report and fills in its part.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It provides consistent error handling and logging across steps
// 2. Every stage can be tested in isolation with a hand-built report
// 3. The first failing step aborts the run, so no report is ever produced
//    from a partially parsed file
package pipeline
