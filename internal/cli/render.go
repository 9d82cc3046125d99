package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/huynhanx03/tetris-reserve/pkg/game"
)

const emptySlot = "-"

// RenderState writes the queue (front to back) and the reserve (top to base)
// side by side, one row per slot.
func RenderState(w io.Writer, st game.State) {
	fmt.Fprintln(w, "CURRENT STATE (queue: front -> back, reserve: top -> base)")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Queue", "Reserve"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := max(st.QueueCapacity, st.ReserveCapacity, len(st.Queue), len(st.Reserve))
	for i := 0; i < rows; i++ {
		table.Append([]string{
			strconv.Itoa(i + 1),
			slot(st.Queue, i, st.QueueCapacity),
			slot(st.Reserve, i, st.ReserveCapacity),
		})
	}
	table.Render()

	if len(st.Reserve) == 0 {
		fmt.Fprintln(w, "Reserve is empty")
	}
}

// slot renders the i-th item, "-" for a free slot and "" past the capacity.
func slot[T fmt.Stringer](items []T, i, capacity int) string {
	if i < len(items) {
		return items[i].String()
	}
	if i < capacity {
		return emptySlot
	}
	return ""
}
