package config

// this holds the resolved configuration values from CLI
var (
	Catalog        string // path to the catalog file (index of event results)
	Roster         string // path to the roster file (driver name -> team)
	PointsScheme   string // comma separated points per finish position (winner first)
	PointsForDNF   bool   // if true, non-finishers still earn position based points
	LogLevel       string // sets the log level (zap log level values)
	LogFormat      string // text vs json
	Output         string // output format for CLI views (table, json)
	HTTPServerAddr string // listen addr for the HTTP server
	ProfilingPort  int    // port for profiling
	MaxLoads       int    // max number of concurrently loaded result files
)
