// Package dedup implements duplicate detection for incoming quotes.
//
// The pipeline has three stages. A cheap lexical pre-filter discards
// candidates that share too few words with the incoming text. Surviving
// candidates are scored one at a time by a semantic oracle (an AI model
// behind the Oracle interface), and anything at or above the similarity
// threshold becomes a Match. Finally the Resolver walks the top matches
// with the user and settles on one of three outcomes: update an existing
// quote, insert the new one anyway, or cancel.
//
// The oracle is optional. When it reports itself unavailable the scan
// returns no matches and the add flow proceeds as a plain insert.
package dedup
