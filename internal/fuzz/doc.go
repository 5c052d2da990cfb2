// Package fuzztests houses Go fuzz harnesses for the cursor: arbitrary bytes
// are decoded and walked, and the position/line/column bookkeeping is checked
// after every step.
//
// Назначение: ловить паники и расхождения line/column на произвольном вводе.
//
// Зависимости: internal/reader, internal/testkit.
package fuzztests
