package speech

// Options are the resolved synthesis settings for one run.
type Options struct {
	Voice  Voice
	Format Format
}
