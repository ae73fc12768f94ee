package fun

var dadJokes = []string{
	"Why don't skeletons fight each other? They don't have the guts.",
	"I'm reading a book about anti-gravity. It's impossible to put down!",
	"Why did the scarecrow win an award? Because he was outstanding in his field.",
	"What do you call fake spaghetti? An impasta!",
}

var vibes = []string{
	"The vibe is immaculate (absolute chad)",
	"Hmm... questionable vibes detected (nuh uh go away)",
	"Vibe check failed. Try again (dude u stink)",
	"Vibes are off the charts (cool guy fr)",
	"Vibe is strong with this one XD",
	"The vibes are... undefined D;",
}

var fortunes = []string{
	"You will have a pleasant surprise.",
	"Now is a good time to try something new.",
	"A thrilling time is in your immediate future.",
	"You will find what you seek.",
	"Adventure awaits you soon.",
	"Don't pursue happiness- create it.",
}

var waifus = []string{"Rem", "Zero Two", "Asuna", "Hinata", "Saber", "Kurisu", "Rias Gremory"}

var husbandos = []string{"Levi", "Kakashi", "Lelouch", "Gojo", "Roy Mustang", "Kazuma", "Kamina"}

var dripLevels = []string{
	"Dripless (u wont EVER get the huzz bro)",
	"Just a little drip :] (u stink, get better)",
	"Decent drip :) (ur cool bro alright)",
	"Certified drip :> (lord have mercy)",
	"Drip overload XD (leave some for the rest of us dude)",
}
