// Package prompt renders sequences of interactive questions (text input,
// single-choice list, confirm) on plain stdin/stdout streams and collects
// validated answers. A Select question's choice list may be computed from
// earlier answers, evaluated strictly in declared order.
package prompt
