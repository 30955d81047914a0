// Package models defines the core domain models for billsplit.
//
// # Models
//
//   - Category: a shared expense with a name and a free-text amount
//   - Person: a participant with one participation flag per category
//   - Bill: the ordered categories and people that make up the split table
//   - Session: a server-hosted bill with its lifetime timestamps
//
// # Positional participation
//
// Participation is positional: Person.Participation[i] belongs to
// Bill.Categories[i]. There is no keyed relation between a flag and a
// category ID, so adding or removing a category must add or remove the flag
// at the same position on every person. Package editor owns those changes.
//
// # Identifiers
//
// Category and person IDs are small integers handed out from per-bill
// counters (Bill.LastCategoryID, Bill.LastPersonID). They only grow, so an ID
// removed from the table is never given to a new row or column. Session IDs
// are UUIDs.
package models
