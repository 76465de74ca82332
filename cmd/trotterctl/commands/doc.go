// Package commands defines the trotterctl CLI, which runs the WorldTrotter
// screen logic offline.
//
// Commands
//
//   - convert      Convert Fahrenheit values to Celsius in a locale
//   - validate     Check and apply one text edit to the conversion field
//   - annotations  List the map annotations, optionally reverse geocoded
//   - snapshot     Render a Mapbox Static Images URL for a map view
//   - book         Load the book web page and summarize it
//
// Settings come from the same environment variables as the service
// (DEFAULT_LOCALE, MAPBOX_TOKEN, BOOK_URL, ...); flags override them.
package commands
