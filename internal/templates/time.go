package templates

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to pin the "Generated" date.
var timeNow = time.Now
