package dealias

// Application is the timing harness's callback contract, grounded on the
// original's abstract class Application: a planner candidate is timed by
// repeatedly running Time over freshly Init-ed state. Init receives the
// geometry the planner is about to measure so an Application can allocate
// appropriately sized scratch space; Clear releases it between candidates.
type Application interface {
	// Init prepares per-candidate state for the geometry g.
	Init(g Geometry) error

	// Clear releases state allocated by Init.
	Clear()

	// Time runs k repetitions of the operation under measurement and
	// returns the total elapsed time in seconds.
	Time(k int) (seconds float64, err error)
}
