/*
Package admission ranks applicants and allocates program seats.

A run takes a roster snapshot (applicants, programs with seat quotas, the
ordered subject list and the admission policy) and returns every applicant
with a total score, a 1-based rank, and the program it was admitted to, if
any.

	ranked := admission.Run(applicants, programs, subjects, policy)

Stages:

  - TotalScore: sum of configured subject scores, missing values count as 0.
  - Compare: total score, then subjects in configured order, then
    LegacyTieBreakKeys.
  - Allocate: tiered greedy passes (quota-reserved, in-district, general)
    over a per-call seat ledger, with ProgramResolver tolerating messy
    preference strings such as "1. Sci-Math".
  - Rank: admitted first, wait-list ordered by policy tier, then score.

All state lives inside one call; the package is safe for concurrent use.
*/
package admission
