package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Recent slideshows",
		query: `
			CREATE TABLE recent_slideshow (
			    id INTEGER PRIMARY KEY,
			    path TEXT,
			    opened_timestamp DATETIME,

			    UNIQUE (path)
			);

			CREATE INDEX recent_slideshow_opened_idx ON recent_slideshow (opened_timestamp);
		`,
	},
}
