// Package bridge connects the OpenMensa client to the menu state.
//
// The menu state only understands update events: string fields carrying flat
// bracketed lists such as ["04.03.2025","05.03.2025"] or [12,13]. The bridge
// fetches from the API, relabels dates as DD.MM.YYYY, formats student prices
// and encodes everything into those events. It also answers the two requests
// the UI sends back: "meals for this day" and "detail for this meal".
//
// Every failure becomes an error_msg event rather than a Go error, so the UI
// can show it like any other update.
package bridge
