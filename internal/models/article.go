package models

// Article is a geotagged encyclopedia article picked for one round of the game.
// Articles are ephemeral: created when a round is set up and discarded afterwards.
type Article struct {
	Title    string      // Title is the article headline shown to players.
	Position Coordinates // Position is the geotag attached to the article.
	PageID   int64       // PageID is the wiki page identifier used to fetch the summary.
}
