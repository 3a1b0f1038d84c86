// Package prompt collects answers from the operator.
//
// A Prompter asks one question at a time. Two implementations exist:
//
//   - LinePrompter reads plain lines from a reader, suppressing echo for
//     secrets when the reader is a terminal. It is the default and the one
//     used by tests.
//   - FormPrompter renders each question as a charmbracelet/huh form, or as
//     huh's accessible line mode. Both need a terminal on the input side
//     and fail with ErrNotTerminal otherwise; scripted input goes through
//     LinePrompter.
//
// Path questions take a validation function. An answer that fails
// validation is reported and the question is asked again, with no limit on
// the number of attempts. Only the end of input or a cancelled context ends
// the loop.
package prompt
