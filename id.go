package cellui

import "strings"

// Id paths name control instances. Each PushID adds a segment; the joined
// qualified id is the sole key for focus, hover, active, and namespaced local
// state, so it must be stable across frames. Segments join with '/'.

const idSeparator = "/"

// PushID pushes an id segment onto the id stack. The joined qualified id is
// recomputed immediately.
func (ui *UI) PushID(segment string) {
	ui.idStack = append(ui.idStack, segment)
	ui.idPath = strings.Join(ui.idStack, idSeparator)
}

// PopID removes the most recent id segment.
func (ui *UI) PopID() {
	if len(ui.idStack) == 0 {
		panic("cellui: PopID on empty id stack")
	}
	ui.idStack = ui.idStack[:len(ui.idStack)-1]
	ui.idPath = strings.Join(ui.idStack, idSeparator)
}

// IDPath returns the current joined qualified id ("" at the root).
func (ui *UI) IDPath() string { return ui.idPath }

// qualifyID resolves a control id against the current id stack.
func (ui *UI) qualifyID(id string) string {
	if ui.idPath == "" {
		return id
	}
	return ui.idPath + idSeparator + id
}

// localKey namespaces a local-store key under the current qualified id.
// The '#' separator keeps value keys out of the id segment namespace.
func (ui *UI) localKey(key string) string {
	return ui.idPath + "#" + key
}
