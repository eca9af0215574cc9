package cellui

import "github.com/atotto/clipboard"

// ClipboardProvider abstracts clipboard access so hosts can substitute a
// platform-specific implementation (e.g. GLFW's window clipboard).
type ClipboardProvider interface {
	// GetText retrieves text from the clipboard, "" if empty or non-text.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// systemClipboard is the default provider, backed by the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) GetText() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return s
}

func (systemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warn("clipboard write failed", "err", err)
	}
}

var clipboardProvider ClipboardProvider = systemClipboard{}

// SetClipboardProvider replaces the clipboard provider. Pass nil to disable
// clipboard support entirely.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// ClipboardGetText retrieves text from the current provider.
func ClipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the current provider.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}
