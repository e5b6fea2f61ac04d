package seed

import "github.com/tbourn/closet-backend/internal/domain"

var mens = []piece{
	{"White Oxford Button-Down", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityCool, "M", "Brooks Brothers"},
	{"Light Blue Oxford", domain.CategoryShirt, domain.ColorBlue, domain.SuitabilityCool, "M", "J.Crew"},
	{"Navy Polo", domain.CategoryShirt, domain.ColorBlue, domain.SuitabilityWarm, "M", "Polo Ralph Lauren"},
	{"White V-Neck Tee", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityHot, "M", "Uniqlo"},
	{"Black Crew Neck Tee", domain.CategoryShirt, domain.ColorBlack, domain.SuitabilityHot, "M", "Everlane"},
	{"Red Polo", domain.CategoryShirt, domain.ColorRed, domain.SuitabilityWarm, "M", "Lacoste"},
	{"White Dress Shirt", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityCool, "15.5", "Charles Tyrwhitt"},
	{"Blue Dress Shirt", domain.CategoryShirt, domain.ColorBlue, domain.SuitabilityCool, "15.5", "Thomas Pink"},
	{"Khaki Chinos", domain.CategoryPants, domain.ColorYellow, domain.SuitabilityCool, "32x32", "Dockers"},
	{"Navy Chinos", domain.CategoryPants, domain.ColorBlue, domain.SuitabilityCool, "32x32", "Bonobos"},
	{"Blue Jeans", domain.CategoryPants, domain.ColorBlue, domain.SuitabilityCool, "32x32", "Levi's"},
	{"Black Dress Pants", domain.CategoryPants, domain.ColorBlack, domain.SuitabilityCool, "32x32", "Theory"},
	{"Gray Wool Trousers", domain.CategoryPants, domain.ColorWhite, domain.SuitabilityCold, "32x32", "Brooks Brothers"},
	{"Khaki Shorts", domain.CategoryPants, domain.ColorYellow, domain.SuitabilityHot, "32", "J.Crew"},
	{"Navy Shorts", domain.CategoryPants, domain.ColorBlue, domain.SuitabilityHot, "32", "Polo Ralph Lauren"},
	{"Navy Blazer", domain.CategoryJacket, domain.ColorBlue, domain.SuitabilityCool, "40R", "Brooks Brothers"},
	{"Black Leather Jacket", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCool, "M", "AllSaints"},
	{"Navy Peacoat", domain.CategoryJacket, domain.ColorBlue, domain.SuitabilityCold, "M", "J.Crew"},
	{"Gray Rain Jacket", domain.CategoryJacket, domain.ColorWhite, domain.SuitabilityRainy, "M", "Patagonia"},
	{"Black Down Puffer", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCold, "M", "The North Face"},
	{"Blue Denim Jacket", domain.CategoryJacket, domain.ColorBlue, domain.SuitabilityCool, "M", "Levi's"},
	{"Brown Oxford Shoes", domain.CategoryShoes, domain.ColorYellow, domain.SuitabilityCool, "10", "Allen Edmonds"},
	{"Black Derby Shoes", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityCool, "10", "Johnston & Murphy"},
	{"White Sneakers", domain.CategoryShoes, domain.ColorWhite, domain.SuitabilityWarm, "10", "Common Projects"},
	{"Brown Boots", domain.CategoryShoes, domain.ColorYellow, domain.SuitabilityCold, "10", "Red Wing"},
	{"Black Chelsea Boots", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityCool, "10", "Thursday Boot Co"},
	{"Blue Canvas Sneakers", domain.CategoryShoes, domain.ColorBlue, domain.SuitabilityHot, "10", "Converse"},
	{"Black Leather Belt", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityCool, "32", "Allen Edmonds"},
	{"Brown Leather Belt", domain.CategoryAccessory, domain.ColorYellow, domain.SuitabilityCool, "32", "Trafalgar"},
	{"Navy Knit Tie", domain.CategoryAccessory, domain.ColorBlue, domain.SuitabilityCool, "One Size", "Drake's"},
	{"Red Silk Tie", domain.CategoryAccessory, domain.ColorRed, domain.SuitabilityCool, "One Size", "Brooks Brothers"},
}

var womens = []piece{
	{"White Button-Down Blouse", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityCool, "M", "Equipment"},
	{"Silk Camisole", domain.CategoryShirt, domain.ColorBlack, domain.SuitabilityWarm, "M", "Eileen Fisher"},
	{"Striped Breton Tee", domain.CategoryShirt, domain.ColorBlue, domain.SuitabilityWarm, "M", "Saint James"},
	{"Black Turtleneck", domain.CategoryShirt, domain.ColorBlack, domain.SuitabilityCold, "M", "Theory"},
	{"Floral Blouse", domain.CategoryShirt, domain.ColorRed, domain.SuitabilityWarm, "M", "Reformation"},
	{"White T-Shirt", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityHot, "M", "Everlane"},
	{"Gray Sweater", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityCold, "M", "Aritzia"},
	{"Pink Cashmere Sweater", domain.CategoryShirt, domain.ColorRed, domain.SuitabilityCold, "M", "J.Crew"},
	{"Denim Shirt", domain.CategoryShirt, domain.ColorBlue, domain.SuitabilityCool, "M", "Madewell"},
	{"Silk Tank Top", domain.CategoryShirt, domain.ColorWhite, domain.SuitabilityHot, "M", "Vince"},
	{"Little Black Dress", domain.CategoryDress, domain.ColorBlack, domain.SuitabilityCool, "M", "Theory"},
	{"Floral Sundress", domain.CategoryDress, domain.ColorRed, domain.SuitabilityHot, "M", "Reformation"},
	{"Wrap Dress", domain.CategoryDress, domain.ColorBlue, domain.SuitabilityWarm, "M", "Diane von Furstenberg"},
	{"Maxi Dress", domain.CategoryDress, domain.ColorWhite, domain.SuitabilityHot, "M", "Free People"},
	{"Pencil Dress", domain.CategoryDress, domain.ColorBlack, domain.SuitabilityCool, "M", "Banana Republic"},
	{"Shirt Dress", domain.CategoryDress, domain.ColorBlue, domain.SuitabilityWarm, "M", "J.Crew"},
	{"Sweater Dress", domain.CategoryDress, domain.ColorWhite, domain.SuitabilityCold, "M", "Aritzia"},
	{"Cocktail Dress", domain.CategoryDress, domain.ColorRed, domain.SuitabilityCool, "M", "Reiss"},
	{"Midi Dress", domain.CategoryDress, domain.ColorBlue, domain.SuitabilityWarm, "M", "& Other Stories"},
	{"Slip Dress", domain.CategoryDress, domain.ColorBlack, domain.SuitabilityWarm, "M", "Reformation"},
	{"Black Skinny Jeans", domain.CategoryPants, domain.ColorBlack, domain.SuitabilityCool, "28", "AG"},
	{"Blue Jeans", domain.CategoryPants, domain.ColorBlue, domain.SuitabilityCool, "28", "Madewell"},
	{"White Jeans", domain.CategoryPants, domain.ColorWhite, domain.SuitabilityWarm, "28", "J.Crew"},
	{"Black Slacks", domain.CategoryPants, domain.ColorBlack, domain.SuitabilityCool, "28", "Theory"},
	{"Pleated Skirt", domain.CategoryPants, domain.ColorBlack, domain.SuitabilityCool, "M", "Aritzia"},
	{"Denim Shorts", domain.CategoryPants, domain.ColorBlue, domain.SuitabilityHot, "28", "Levi's"},
	{"White Shorts", domain.CategoryPants, domain.ColorWhite, domain.SuitabilityHot, "28", "J.Crew"},
	{"Pencil Skirt", domain.CategoryPants, domain.ColorBlack, domain.SuitabilityCool, "M", "Banana Republic"},
	{"Pleated Midi Skirt", domain.CategoryPants, domain.ColorBlue, domain.SuitabilityCool, "M", "& Other Stories"},
	{"Leather Pants", domain.CategoryPants, domain.ColorBlack, domain.SuitabilityCold, "28", "AllSaints"},
	{"Trench Coat", domain.CategoryJacket, domain.ColorYellow, domain.SuitabilityRainy, "M", "Burberry"},
	{"Leather Jacket", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCool, "M", "AllSaints"},
	{"Wool Coat", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCold, "M", "Max Mara"},
	{"Denim Jacket", domain.CategoryJacket, domain.ColorBlue, domain.SuitabilityCool, "M", "Madewell"},
	{"Blazer", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCool, "M", "Theory"},
	{"Rain Jacket", domain.CategoryJacket, domain.ColorBlue, domain.SuitabilityRainy, "M", "Patagonia"},
	{"Puffer Jacket", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCold, "M", "The North Face"},
	{"Cardigan", domain.CategoryJacket, domain.ColorWhite, domain.SuitabilityCool, "M", "Aritzia"},
	{"Bomber Jacket", domain.CategoryJacket, domain.ColorBlack, domain.SuitabilityCool, "M", "Alpha Industries"},
	{"Tweed Jacket", domain.CategoryJacket, domain.ColorBlue, domain.SuitabilityCool, "M", "Chanel"},
	{"Black Pumps", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityCool, "8", "Jimmy Choo"},
	{"White Sneakers", domain.CategoryShoes, domain.ColorWhite, domain.SuitabilityWarm, "8", "Common Projects"},
	{"Ankle Boots", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityCold, "8", "Stuart Weitzman"},
	{"Ballet Flats", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityWarm, "8", "Repetto"},
	{"Sandals", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityHot, "8", "Birkenstock"},
	{"Loafers", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityCool, "8", "Gucci"},
	{"Espadrilles", domain.CategoryShoes, domain.ColorBlue, domain.SuitabilityHot, "8", "Castaner"},
	{"Chelsea Boots", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityCold, "8", "Blundstone"},
	{"Mules", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityWarm, "8", "The Row"},
	{"Slingbacks", domain.CategoryShoes, domain.ColorBlack, domain.SuitabilityWarm, "8", "Chanel"},
	{"Silk Scarf", domain.CategoryAccessory, domain.ColorRed, domain.SuitabilityCool, "One Size", "Hermès"},
	{"Leather Belt", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityCool, "M", "Gucci"},
	{"Tote Bag", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityCool, "One Size", "Celine"},
	{"Crossbody Bag", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityCool, "One Size", "Chanel"},
	{"Sunglasses", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityHot, "One Size", "Ray-Ban"},
	{"Wool Scarf", domain.CategoryAccessory, domain.ColorBlue, domain.SuitabilityCold, "One Size", "Acne Studios"},
	{"Leather Gloves", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityCold, "M", "Coach"},
	{"Statement Necklace", domain.CategoryAccessory, domain.ColorWhite, domain.SuitabilityCool, "One Size", "Jennifer Fisher"},
	{"Wool Hat", domain.CategoryAccessory, domain.ColorBlack, domain.SuitabilityCold, "One Size", "Acne Studios"},
	{"Silk Hair Scarf", domain.CategoryAccessory, domain.ColorBlue, domain.SuitabilityWarm, "One Size", "Dior"},
}
