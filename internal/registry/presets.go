package registry

import "github.com/vovakirdan/gridsnake/internal/games/snake"

func init() {
	Register(Board{
		Name:  "classic",
		Title: "The default square board",
		Cols:  snake.DefaultCols,
		Rows:  snake.DefaultRows,
		Food:  snake.DefaultFoodCount,
	})
	Register(Board{Name: "mini", Title: "Small and crowded", Cols: 12, Rows: 12, Food: 2})
	Register(Board{Name: "wide", Title: "Wide board for wide terminals", Cols: 30, Rows: 15, Food: 3})
	Register(Board{Name: "large", Title: "Lots of room, lots of food", Cols: 40, Rows: 25, Food: 5})
}
