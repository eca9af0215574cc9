package cellui

// StateStore persists values between frames, keyed by string. Unlike hidden
// widget state this is explicit and inspectable; the UI namespaces local
// values under the current qualified id, while global values bypass the
// namespace entirely.
type StateStore interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
}

// MapStore is a simple in-memory StateStore implementation.
type MapStore map[string]any

// Get retrieves a value from the store.
func (m MapStore) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Set stores a value in the store.
func (m MapStore) Set(key string, value any) {
	m[key] = value
}

// Delete removes a value from the store.
func (m MapStore) Delete(key string) {
	delete(m, key)
}

// GetValue reads a global (un-namespaced) value.
func (ui *UI) GetValue(key string) (any, bool) {
	return ui.store.Get(key)
}

// SetValue writes a global (un-namespaced) value.
func (ui *UI) SetValue(key string, value any) {
	ui.store.Set(key, value)
}

// GetLocalValue reads a value namespaced under the current qualified id.
func (ui *UI) GetLocalValue(key string) (any, bool) {
	return ui.store.Get(ui.localKey(key))
}

// SetLocalValue writes a value namespaced under the current qualified id.
func (ui *UI) SetLocalValue(key string, value any) {
	ui.store.Set(ui.localKey(key), value)
}

// DeleteLocalValue removes a namespaced value.
func (ui *UI) DeleteLocalValue(key string) {
	ui.store.Delete(ui.localKey(key))
}

// LocalState retrieves typed local state, returning defaultVal if the value
// doesn't exist or has the wrong type.
func LocalState[T any](ui *UI, key string, defaultVal T) T {
	if v, ok := ui.GetLocalValue(key); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetLocalState stores typed local state.
func SetLocalState[T any](ui *UI, key string, value T) {
	ui.SetLocalValue(key, value)
}
