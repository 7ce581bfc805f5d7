// Package dispatch routes inbound update events into the menu state.
//
// An Event is a flat map of field names to payload strings, as delivered by
// the transport. Dispatch looks at it in a fixed order:
//
//  1. error_msg: record and surface the error, nothing else happens
//  2. meal_name + meal_price + meal_notes: store the meal detail
//  3. day_list (+ weekday_list): replace the day list
//  4. meal_ids + meal_names + meal_prices: replace the meal list, signal once
//  5. always: signal that the day list should be redrawn
//
// Steps 2 to 4 are independent; one event may carry any combination. Events
// are processed one at a time to completion; the dispatcher keeps no queue.
package dispatch
