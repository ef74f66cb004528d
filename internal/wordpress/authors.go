package wordpress

// Author is a site user posts are attributed to.
type Author struct {
	ID   int
	Name string
}

// Beat assignments. Each trend category publishes under a fixed
// site account.
var authorsByCategory = map[string]Author{
	"sports":           {ID: 2, Name: "Saumitra"},
	"national":         {ID: 1, Name: "Disharth"},
	"world":            {ID: 3, Name: "Aditi"},
	"technology":       {ID: 4, Name: "Sumit"},
	"career":           {ID: 4, Name: "Sumit"},
	"business":         {ID: 5, Name: "Aditya"},
	"education":        {ID: 8, Name: "Latika"},
	"crime":            {ID: 6, Name: "Piyush"},
	"interesting-news": {ID: 7, Name: "Ramkrishna"},
	"fact_check":       {ID: 7, Name: "Ramkrishna"},
	"health":           {ID: 9, Name: "Shrey"},
	"religion":         {ID: 9, Name: "Shrey"},
	"entertainment":    {ID: 9, Name: "Shrey"},
	"वायरल":            {ID: 11, Name: "Shanvi"},
	"उत्तर प्रदेश":     {ID: 10, Name: "Harshit"},
}

// AuthorForCategory returns the account assigned to the category's
// beat, defaulting to the national desk.
func AuthorForCategory(category string) Author {
	if author, ok := authorsByCategory[category]; ok {
		return author
	}
	return Author{ID: 1, Name: "Disharth"}
}
