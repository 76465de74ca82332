package domain

// Placeholder is displayed when there is no Celsius value.
const Placeholder = "---"

// ConversionState tells whether the form currently holds a value.
type ConversionState string

const (
	StateNoValue  ConversionState = "no_value"
	StateHasValue ConversionState = "has_value"
)

// FahrenheitToCelsius applies the fixed conversion formula.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// EditResult is the outcome of one text edit on the conversion form.
type EditResult struct {
	Accepted   bool     `json:"accepted"`
	Text       string   `json:"text"`
	Fahrenheit *float64 `json:"fahrenheit"`
	Celsius    *float64 `json:"celsius"`
	Display    string   `json:"display"`
}

// Conversion is the state behind the Fahrenheit to Celsius form. It is not
// safe for concurrent use; callers serialize edits per form.
type Conversion struct {
	format     NumberFormat
	text       string
	fahrenheit *float64
	celsius    *float64
	display    string
}

// NewConversion returns an empty form rendering numbers with format.
func NewConversion(format NumberFormat) *Conversion {
	return &Conversion{
		format:  format,
		display: Placeholder,
	}
}

// ValidateEdit checks a proposed edit against the form's locale separator.
func (c *Conversion) ValidateEdit(current string, r EditRange, replacement string) bool {
	return ValidateEdit(current, r, replacement, c.format.DecimalSeparator())
}

// SetInput stores the Fahrenheit value and recomputes the Celsius value and
// display. A nil value clears both.
func (c *Conversion) SetInput(fahrenheit *float64) {
	if fahrenheit == nil {
		c.fahrenheit = nil
		c.celsius = nil
	} else {
		f := *fahrenheit
		celsius := FahrenheitToCelsius(f)
		c.fahrenheit = &f
		c.celsius = &celsius
	}
	c.display = c.Format(c.celsius)
}

// Format renders v, or the placeholder when v is nil.
func (c *Conversion) Format(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return c.format.Format(*v)
}

// Edit validates and applies a text edit, then re-derives the values from the
// new text. A rejected edit leaves the form untouched.
func (c *Conversion) Edit(r EditRange, replacement string) (EditResult, error) {
	if !c.ValidateEdit(c.text, r, replacement) {
		res := c.Result()
		res.Accepted = false
		return res, nil
	}

	text, err := ApplyEdit(c.text, r, replacement)
	if err != nil {
		return EditResult{}, err
	}
	c.text = text
	c.SetInput(c.format.Parse(text))

	res := c.Result()
	res.Accepted = true
	return res, nil
}

// Result reports the current form state.
func (c *Conversion) Result() EditResult {
	return EditResult{
		Text:       c.text,
		Fahrenheit: copyFloat(c.fahrenheit),
		Celsius:    copyFloat(c.celsius),
		Display:    c.display,
	}
}

// Text returns the committed field text.
func (c *Conversion) Text() string { return c.text }

// Display returns the Celsius display string.
func (c *Conversion) Display() string { return c.display }

// Fahrenheit returns the input value, if any.
func (c *Conversion) Fahrenheit() (float64, bool) {
	if c.fahrenheit == nil {
		return 0, false
	}
	return *c.fahrenheit, true
}

// Celsius returns the derived value, if any.
func (c *Conversion) Celsius() (float64, bool) {
	if c.celsius == nil {
		return 0, false
	}
	return *c.celsius, true
}

// State returns StateHasValue when a Fahrenheit value is set.
func (c *Conversion) State() ConversionState {
	if c.fahrenheit == nil {
		return StateNoValue
	}
	return StateHasValue
}

// NumberFormat returns the format the form renders with.
func (c *Conversion) NumberFormat() NumberFormat { return c.format }

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
