package cellui

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// themeFile is the YAML shape of a theme. Every field is an optional color
// string (see ParseColor); unset fields keep the default style's value.
type themeFile struct {
	Text       string `yaml:"text"`
	Background string `yaml:"background"`

	Button struct {
		Text       string `yaml:"text"`
		Background string `yaml:"background"`
		Hover      string `yaml:"hover"`
		Active     string `yaml:"active"`
		Disabled   string `yaml:"disabled"`
	} `yaml:"button"`

	Input struct {
		Text       string `yaml:"text"`
		Background string `yaml:"background"`
		CursorText string `yaml:"cursor_text"`
		CursorBg   string `yaml:"cursor_background"`
	} `yaml:"input"`

	Selection struct {
		Text       string `yaml:"text"`
		Background string `yaml:"background"`
	} `yaml:"selection"`

	Frame     string `yaml:"frame"`
	Focus     string `yaml:"focus"`
	Scrollbar struct {
		Background string `yaml:"background"`
		Thumb      string `yaml:"thumb"`
	} `yaml:"scrollbar"`
}

// StyleFromYAML parses a theme document and applies it over DefaultStyle.
func StyleFromYAML(data []byte) (Style, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Style{}, fmt.Errorf("theme: %w", err)
	}

	st := DefaultStyle()
	var firstErr error
	apply := func(dst *uint32, src string) {
		if src == "" {
			return
		}
		c, err := ParseColor(src)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		*dst = c
	}

	apply(&st.Fg, tf.Text)
	apply(&st.Bg, tf.Background)
	apply(&st.ButtonFg, tf.Button.Text)
	apply(&st.ButtonBg, tf.Button.Background)
	apply(&st.ButtonHoverBg, tf.Button.Hover)
	apply(&st.ButtonActiveBg, tf.Button.Active)
	apply(&st.DisabledFg, tf.Button.Disabled)
	apply(&st.InputFg, tf.Input.Text)
	apply(&st.InputBg, tf.Input.Background)
	apply(&st.InputCursorFg, tf.Input.CursorText)
	apply(&st.InputCursorBg, tf.Input.CursorBg)
	apply(&st.SelectionFg, tf.Selection.Text)
	apply(&st.SelectionBg, tf.Selection.Background)
	apply(&st.FrameFg, tf.Frame)
	apply(&st.FocusFg, tf.Focus)
	apply(&st.ScrollbarBg, tf.Scrollbar.Background)
	apply(&st.ScrollbarThumb, tf.Scrollbar.Thumb)

	if firstErr != nil {
		return Style{}, fmt.Errorf("theme: %w", firstErr)
	}
	return st, nil
}

// LoadStyle reads and parses a YAML theme file.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("theme: %w", err)
	}
	return StyleFromYAML(data)
}
