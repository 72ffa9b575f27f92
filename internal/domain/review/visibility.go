package review

// Visible composes the two read gates every query path must pass: the
// soft-delete flag and the moderation flag. Neither is optional.
func Visible(alive, visibleOnProductPage bool) bool {
	return alive && visibleOnProductPage
}
