// Package meal classifies canteen meal names by diet.
//
// Canteens mark vegan and vegetarian dishes inconsistently: sometimes as a
// prefix ("VEGAN: Curry", "Vegetarisch Lasagne"), sometimes somewhere in the
// name ("Pasta with vegan cream"). Classify handles both, in that order of
// precedence, and returns the cleaned name together with the Diet tag. The
// German "vegetarisch" counts as vegetarian.
//
// Each Diet maps to exactly one Icon; untagged meals get the pot icon.
package meal
