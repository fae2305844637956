// Package patcher inserts generated statements into a bot's entry file.
// The insertion point is found by scanning the file from the end for the
// last recognized initialization call (nonebot.load* / nonebot.init*).
package patcher
