package safety

// Options carries the global safety flags.
type Options struct {
	// DryRun shows what would change without writing anything.
	DryRun bool
	// Yes answers every confirmation affirmatively.
	Yes bool
	// Force relaxes checks that would otherwise refuse an operation, such as
	// restoring from a file that is not a backup of the manifest.
	Force bool
}
