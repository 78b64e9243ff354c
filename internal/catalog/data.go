package catalog

import "mood-movie-recommender/internal/models"

// Curated per-mood shortlists (mixed Bollywood/Hollywood), at least 8 each.
var moodLists = map[models.Mood][]models.Movie{
	models.MoodHappy: {
		{ID: "f_h_1", Title: "3 Idiots", Overview: "A comedy-drama about friendship and following your dreams.", Rating: 8.4, PosterURL: "https://image.tmdb.org/t/p/w500/66A9MqXOyVp71a6tB3k1apLNj8S.jpg", ReleaseDate: "2009"},
		{ID: "f_h_2", Title: "The Hangover", Overview: "A comedy about a bachelor party gone wrong in Las Vegas.", Rating: 7.7, PosterURL: "https://image.tmdb.org/t/p/w500/4qM1o4XZfVzPhKxW0a4t8qH5z8J.jpg", ReleaseDate: "2009"},
		{ID: "f_h_3", Title: "Munna Bhai M.B.B.S.", Overview: "A gangster enrolls in medical college to fulfill his father's dream.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/jQG3t2Z2YEl5GQY2QdYwz0S2w3f.jpg", ReleaseDate: "2003"},
		{ID: "f_h_4", Title: "Zindagi Na Milegi Dobara", Overview: "Three friends take a road trip that changes their lives.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/ao0nC0mZ4FcKqJsteVEh9UpAJZK.jpg", ReleaseDate: "2011"},
		{ID: "f_h_5", Title: "PK", Overview: "An alien on Earth loses his communication device and explores humanity.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/k1QUCjNAkfRpWfm1dVJGUmVHzGv.jpg", ReleaseDate: "2014"},
		{ID: "f_h_6", Title: "Superbad", Overview: "Two friends try to enjoy their last weeks of high school.", Rating: 7.6, PosterURL: "https://image.tmdb.org/t/p/w500/ek8e8txUyUwd2BNqj6lFEerJfbq.jpg", ReleaseDate: "2007"},
		{ID: "f_h_7", Title: "Hera Pheri", Overview: "Three men get caught up in a kidnapping gone wrong.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/8oNbyz1Cdm42Hcps225y7sY9qsK.jpg", ReleaseDate: "2000"},
		{ID: "f_h_8", Title: "Jumanji: Welcome to the Jungle", Overview: "Teens get sucked into a video game adventure.", Rating: 6.9, PosterURL: "https://image.tmdb.org/t/p/w500/bXrZ5iHBEjH7WMidbUDQ0U2xbmr.jpg", ReleaseDate: "2017"},
	},
	models.MoodSad: {
		{ID: "f_s_1", Title: "Taare Zameen Par", Overview: "A dyslexic child's life changes when he meets an art teacher.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/2aEoG9V7H5PHeTtNQ2rYZRk5vK1.jpg", ReleaseDate: "2007"},
		{ID: "f_s_2", Title: "The Pursuit of Happyness", Overview: "A struggling salesman takes custody of his son.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/bO9WFb7GZ7YzWxZmf0RduCMsZV3.jpg", ReleaseDate: "2006"},
		{ID: "f_s_3", Title: "Kal Ho Naa Ho", Overview: "A man teaches a woman how to love and live.", Rating: 7.8, PosterURL: "https://image.tmdb.org/t/p/w500/2Yx2oyS9MhUlCT3VkOITkkpZRlm.jpg", ReleaseDate: "2003"},
		{ID: "f_s_4", Title: "Grave of the Fireflies", Overview: "Siblings struggle to survive in wartime Japan.", Rating: 8.5, PosterURL: "https://image.tmdb.org/t/p/w500/4u1vptE8aXuzwNqp1S3z3bWQp6y.jpg", ReleaseDate: "1988"},
		{ID: "f_s_5", Title: "Masaan", Overview: "Four lives intersect along the Ganges.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/9zA3RDeo63HgNbUsVTNff7kwh28.jpg", ReleaseDate: "2015"},
		{ID: "f_s_6", Title: "A Beautiful Mind", Overview: "A brilliant mathematician battles schizophrenia.", Rating: 8.2, PosterURL: "https://image.tmdb.org/t/p/w500/zwzWCmH72OSC9NA0ipoqw5Zjya8.jpg", ReleaseDate: "2001"},
		{ID: "f_s_7", Title: "Barfi!", Overview: "A deaf and mute man navigates love and life.", Rating: 7.4, PosterURL: "https://image.tmdb.org/t/p/w500/a9YVh1SeDsICoZ6irMIXja2fJG0.jpg", ReleaseDate: "2012"},
		{ID: "f_s_8", Title: "Manchester by the Sea", Overview: "A janitor returns to his hometown after a tragedy.", Rating: 7.7, PosterURL: "https://image.tmdb.org/t/p/w500/xt7xQCFaN7G42xvAfoyz1K77QSq.jpg", ReleaseDate: "2016"},
	},
	models.MoodRomantic: {
		{ID: "f_r_1", Title: "Kuch Kuch Hota Hai", Overview: "Friendship turns into love across years.", Rating: 7.5, PosterURL: "https://image.tmdb.org/t/p/w500/nC6YewsGmmKzBSSMSmc5QwDFi1C.jpg", ReleaseDate: "1998"},
		{ID: "f_r_2", Title: "The Notebook", Overview: "A summer romance that lasts a lifetime.", Rating: 7.8, PosterURL: "https://image.tmdb.org/t/p/w500/rNzQyW4f8B8cQeg6XyC1XtnG9Sh.jpg", ReleaseDate: "2004"},
		{ID: "f_r_3", Title: "Yeh Jawaani Hai Deewani", Overview: "Friends, travel and love.", Rating: 7.2, PosterURL: "https://image.tmdb.org/t/p/w500/2mW7UZ5EKeosFVJeGb3PcTJS3BM.jpg", ReleaseDate: "2013"},
		{ID: "f_r_4", Title: "Before Sunrise", Overview: "Two strangers meet on a train and wander Vienna.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/9B39S2hY6G4qzM7gc3KJ2YMBX1A.jpg", ReleaseDate: "1995"},
		{ID: "f_r_5", Title: "Tamasha", Overview: "A man struggles between societal expectations and passion.", Rating: 7.2, PosterURL: "https://image.tmdb.org/t/p/w500/gIMiAFDzy83H8XTur2qxGn8pYt8.jpg", ReleaseDate: "2015"},
		{ID: "f_r_6", Title: "La La Land", Overview: "Love and ambition in Los Angeles.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/uDO8zWDhfWwoFdKS4fzkUJt0Rf0.jpg", ReleaseDate: "2016"},
		{ID: "f_r_7", Title: "Dil Bechara", Overview: "A poignant love story inspired by TFiOS.", Rating: 7.6, PosterURL: "https://image.tmdb.org/t/p/w500/h0rXWmWZKD0wC2WkP3cu6Uytzsz.jpg", ReleaseDate: "2020"},
		{ID: "f_r_8", Title: "Notting Hill", Overview: "A bookseller falls for a film star.", Rating: 7.3, PosterURL: "https://image.tmdb.org/t/p/w500/6u1fYtxG5eqjhtCPDx04pJphQRW.jpg", ReleaseDate: "1999"},
	},
	models.MoodExcited: {
		{ID: "f_e_1", Title: "Dhoom 3", Overview: "High-octane heists and chases.", Rating: 6.8, PosterURL: "https://image.tmdb.org/t/p/w500/8JQZ2rCA0nVddOZXS6jttuPAHy9.jpg", ReleaseDate: "2013"},
		{ID: "f_e_2", Title: "Mission: Impossible - Fallout", Overview: "Ethan Hunt and team prevent global catastrophe.", Rating: 7.7, PosterURL: "https://image.tmdb.org/t/p/w500/AkJQpZp9WoNdj7pLYSj1L0RcMMN.jpg", ReleaseDate: "2018"},
		{ID: "f_e_3", Title: "War", Overview: "An elite soldier hunts his rogue mentor.", Rating: 6.5, PosterURL: "https://image.tmdb.org/t/p/w500/pV3Hn6Nq35p3xNmPR9U1FVLtZLk.jpg", ReleaseDate: "2019"},
		{ID: "f_e_4", Title: "Mad Max: Fury Road", Overview: "Post-apocalyptic chase saga.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/8tZYtuWezp8JbcsvHYO0O46tFbo.jpg", ReleaseDate: "2015"},
		{ID: "f_e_5", Title: "Pathaan", Overview: "An Indian spy embarks on a dangerous mission.", Rating: 6.6, PosterURL: "https://image.tmdb.org/t/p/w500/ayrG9q24apqYh6g82kTFogyXv3E.jpg", ReleaseDate: "2023"},
		{ID: "f_e_6", Title: "John Wick", Overview: "A retired hitman seeks vengeance.", Rating: 7.4, PosterURL: "https://image.tmdb.org/t/p/w500/fZPSd91yGE9fCcCe6OoQr6E3Bev.jpg", ReleaseDate: "2014"},
		{ID: "f_e_7", Title: "RRR", Overview: "Two legendary revolutionaries forge a bond.", Rating: 7.8, PosterURL: "https://image.tmdb.org/t/p/w500/6WExLObz0SqGZQhQ0imeISFRCGD.jpg", ReleaseDate: "2022"},
		{ID: "f_e_8", Title: "The Dark Knight", Overview: "Batman faces the Joker.", Rating: 9.0, PosterURL: "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg", ReleaseDate: "2008"},
	},
	models.MoodAngry: {
		{ID: "f_a_1", Title: "John Wick", Overview: "A retired hitman seeks vengeance.", Rating: 7.4, PosterURL: "https://image.tmdb.org/t/p/w500/fZPSd91yGE9fCcCe6OoQr6E3Bev.jpg", ReleaseDate: "2014"},
		{ID: "f_a_2", Title: "Mad Max: Fury Road", Overview: "Post-apocalyptic chase saga.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/8tZYtuWezp8JbcsvHYO0O46tFbo.jpg", ReleaseDate: "2015"},
		{ID: "f_a_3", Title: "Kaithi", Overview: "An ex-convict gets caught up in a night-long chase.", Rating: 8.3, PosterURL: "https://image.tmdb.org/t/p/w500/9dI2wAPOQg8nH9n1tFoZT3zhEXI.jpg", ReleaseDate: "2019"},
		{ID: "f_a_4", Title: "Baby", Overview: "An elite Indian counter-intelligence unit hunts terrorists.", Rating: 7.8, PosterURL: "https://image.tmdb.org/t/p/w500/vQ8G2GNJUgIVbawn94Qh1gC7YpN.jpg", ReleaseDate: "2015"},
		{ID: "f_a_5", Title: "The Dark Knight", Overview: "Batman faces the Joker.", Rating: 9.0, PosterURL: "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg", ReleaseDate: "2008"},
		{ID: "f_a_6", Title: "Extraction", Overview: "A black ops mercenary embarks on a deadly mission in Dhaka.", Rating: 6.8, PosterURL: "https://image.tmdb.org/t/p/w500/wlfDxbGEsW58vGhFljKkcR5IxDj.jpg", ReleaseDate: "2020"},
		{ID: "f_a_7", Title: "Pathaan", Overview: "An Indian spy embarks on a dangerous mission.", Rating: 6.6, PosterURL: "https://image.tmdb.org/t/p/w500/ayrG9q24apqYh6g82kTFogyXv3E.jpg", ReleaseDate: "2023"},
		{ID: "f_a_8", Title: "War", Overview: "An elite soldier hunts his rogue mentor.", Rating: 6.5, PosterURL: "https://image.tmdb.org/t/p/w500/pV3Hn6Nq35p3xNmPR9U1FVLtZLk.jpg", ReleaseDate: "2019"},
	},
	models.MoodRelaxed: {
		{ID: "f_rl_1", Title: "The Secret Life of Walter Mitty", Overview: "A daydreamer embarks on a global journey.", Rating: 7.2, PosterURL: "https://image.tmdb.org/t/p/w500/tw1r3qYi58E8CUpbZQhQ0imeOqM.jpg", ReleaseDate: "2013"},
		{ID: "f_rl_2", Title: "Life of Pi", Overview: "A young man survives a disaster at sea on a lifeboat with a tiger.", Rating: 7.9, PosterURL: "https://image.tmdb.org/t/p/w500/3bD5Qn7qSdz8CA0nVddOZXS6jtV.jpg", ReleaseDate: "2012"},
		{ID: "f_rl_3", Title: "Midnight in Paris", Overview: "A writer discovers midnight transports him to the 1920s.", Rating: 7.6, PosterURL: "https://image.tmdb.org/t/p/w500/4wBG5kbfagTQclETblPRRGihk0I.jpg", ReleaseDate: "2011"},
		{ID: "f_rl_4", Title: "The Lunchbox", Overview: "A mistaken delivery connects a young housewife and an older man.", Rating: 7.8, PosterURL: "https://image.tmdb.org/t/p/w500/3hFQm3GEXLMaLLq5yRvCNrI6Vsg.jpg", ReleaseDate: "2013"},
		{ID: "f_rl_5", Title: "Amélie", Overview: "A whimsical depiction of contemporary Parisian life.", Rating: 8.3, PosterURL: "https://image.tmdb.org/t/p/w500/sWGaQbY4Z1cdq9VHtV6nRvWmvMR.jpg", ReleaseDate: "2001"},
		{ID: "f_rl_6", Title: "October", Overview: "A tender coming-of-age story set in Delhi.", Rating: 7.2, PosterURL: "https://image.tmdb.org/t/p/w500/yZK0YvZCENKz7dxyzKDn5XxhxLq.jpg", ReleaseDate: "2018"},
		{ID: "f_rl_7", Title: "Chef", Overview: "A chef starts a food truck to reclaim his creativity.", Rating: 7.3, PosterURL: "https://image.tmdb.org/t/p/w500/zfZ7dUnc8mZKVEtKiMyVZbYbK9F.jpg", ReleaseDate: "2014"},
		{ID: "f_rl_8", Title: "The Hundred-Foot Journey", Overview: "An Indian family opens a restaurant in France.", Rating: 7.3, PosterURL: "https://image.tmdb.org/t/p/w500/bQHIiph0QGlpK1iD7agEXKDkQ5Y.jpg", ReleaseDate: "2014"},
	},
	models.MoodBored: {
		{ID: "f_b_1", Title: "Shutter Island", Overview: "A marshal investigates a disappearance on an island hospital.", Rating: 8.2, PosterURL: "https://image.tmdb.org/t/p/w500/kve20tXwUZpu4GUX8l6X7Z4jmL6.jpg", ReleaseDate: "2010"},
		{ID: "f_b_2", Title: "Kahaani", Overview: "A pregnant woman searches for her missing husband in Kolkata.", Rating: 7.9, PosterURL: "https://image.tmdb.org/t/p/w500/oK8GMDIS9KuX3sI5Yucs5cjox96.jpg", ReleaseDate: "2012"},
		{ID: "f_b_3", Title: "Andhadhun", Overview: "A blind pianist is swept up in a murder mystery.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/67ZdZXXAuv5Z7xL7sRKqzZo4PM5.jpg", ReleaseDate: "2018"},
		{ID: "f_b_4", Title: "Drishyam", Overview: "A father goes to great lengths to protect his family.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/8eQof8I4eAbOeXtfLOcAfeUOLuO.jpg", ReleaseDate: "2013"},
		{ID: "f_b_5", Title: "Tenet", Overview: "A secret agent manipulates time to prevent World War III.", Rating: 7.3, PosterURL: "https://image.tmdb.org/t/p/w500/k68nPLbIST6NP96JmTxmZijEvCA.jpg", ReleaseDate: "2020"},
		{ID: "f_b_6", Title: "Detective Byomkesh Bakshy!", Overview: "A young detective probes a sinister conspiracy in 1940s Calcutta.", Rating: 7.5, PosterURL: "https://image.tmdb.org/t/p/w500/9k2YkdEYY5EYXPLkZX31lrT7xYu.jpg", ReleaseDate: "2015"},
		{ID: "f_b_7", Title: "Arrival", Overview: "A linguist communicates with extraterrestrials.", Rating: 7.9, PosterURL: "https://image.tmdb.org/t/p/w500/x2FJsf1ElAgr63Y3PNPtJrcmpoe.jpg", ReleaseDate: "2016"},
		{ID: "f_b_8", Title: "Talaash", Overview: "A cop investigates a high-profile death.", Rating: 7.2, PosterURL: "https://image.tmdb.org/t/p/w500/2VtW7UZ5EKeosFVJeGb3PcTJX5r.jpg", ReleaseDate: "2012"},
	},
	models.MoodScared: {
		{ID: "f_sc_1", Title: "The Conjuring", Overview: "Paranormal investigators help a family terrorized by a dark presence.", Rating: 7.5, PosterURL: "https://image.tmdb.org/t/p/w500/wVYREutTvI2tmxr6ujrHT704wGF.jpg", ReleaseDate: "2013"},
		{ID: "f_sc_2", Title: "Tumbbad", Overview: "A mythological horror set in colonial India.", Rating: 8.2, PosterURL: "https://image.tmdb.org/t/p/w500/nPGZ1YgnPZXoqBYwygJyI07212e.jpg", ReleaseDate: "2018"},
		{ID: "f_sc_3", Title: "Stree", Overview: "A small town is haunted by a spirit.", Rating: 7.4, PosterURL: "https://image.tmdb.org/t/p/w500/8Lx7x1YgnM7hZ9E9QnUnxEporX2.jpg", ReleaseDate: "2018"},
		{ID: "f_sc_4", Title: "Hereditary", Overview: "A family unravels terrifying secrets after their matriarch dies.", Rating: 7.3, PosterURL: "https://image.tmdb.org/t/p/w500/bcT8CaBIj086WVD7K529h78eujb.jpg", ReleaseDate: "2018"},
		{ID: "f_sc_5", Title: "The Ring", Overview: "A cursed videotape kills viewers in seven days.", Rating: 7.1, PosterURL: "https://image.tmdb.org/t/p/w500/e2t5CKXQwZ0pniNXh9vDOMkMt2g.jpg", ReleaseDate: "2002"},
		{ID: "f_sc_6", Title: "Bhoot", Overview: "A couple's life turns nightmarish in a haunted apartment.", Rating: 6.3, PosterURL: "https://image.tmdb.org/t/p/w500/f9G4mJcP0xK3opYJwcYqKqRR3YK.jpg", ReleaseDate: "2003"},
		{ID: "f_sc_7", Title: "Train to Busan", Overview: "Passengers fight to survive on a zombie-infested train.", Rating: 7.6, PosterURL: "https://image.tmdb.org/t/p/w500/2oRRTPNtozgPhOa9CYZiVl4GRQ5.jpg", ReleaseDate: "2016"},
		{ID: "f_sc_8", Title: "The Nun", Overview: "A priest and novice uncover unholy secrets.", Rating: 5.8, PosterURL: "https://image.tmdb.org/t/p/w500/sFC1ElvoKGdHJIWRpNB3xWJ9lJA.jpg", ReleaseDate: "2018"},
	},
	models.MoodNostalgic: {
		{ID: "f_n_1", Title: "Lagaan", Overview: "Villagers challenge British officers to a cricket match.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/ucW5Z7WvyaManIeZDV4SSQdlqz7.jpg", ReleaseDate: "2001"},
		{ID: "f_n_2", Title: "Swades", Overview: "An NRI returns to India and rediscovers home.", Rating: 8.2, PosterURL: "https://image.tmdb.org/t/p/w500/y6VAk0nnBYnCTsRmR271GGBqBPd.jpg", ReleaseDate: "2004"},
		{ID: "f_n_3", Title: "Anand", Overview: "A terminally ill man spreads joy.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/1ZJYG1ChB7sCv0xOsyjzAm8h1Hc.jpg", ReleaseDate: "1971"},
		{ID: "f_n_4", Title: "Sholay", Overview: "Two criminals are hired to capture a ruthless bandit.", Rating: 8.2, PosterURL: "https://image.tmdb.org/t/p/w500/j1zAr72Xd23LSeX776BF3nf6tDr.jpg", ReleaseDate: "1975"},
		{ID: "f_n_5", Title: "Hum Aapke Hain Koun..!", Overview: "A family drama about love and relationships.", Rating: 7.5, PosterURL: "https://image.tmdb.org/t/p/w500/6NKxaz2YsmiVjCwXTkA8azhbugi.jpg", ReleaseDate: "1994"},
		{ID: "f_n_6", Title: "Guide", Overview: "A tour guide falls in love and seeks redemption.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/7wY2Gj33jjXNMTvEihQ6VbUaz2Q.jpg", ReleaseDate: "1965"},
		{ID: "f_n_7", Title: "The Sound of Music", Overview: "A governess brings music to a family in Austria.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/qgM1b9DLG3sZ3VAb9YSEuxsjjXN.jpg", ReleaseDate: "1965"},
		{ID: "f_n_8", Title: "Forrest Gump", Overview: "A man witnesses historic events with simple wisdom.", Rating: 8.8, PosterURL: "https://image.tmdb.org/t/p/w500/saHP97rTPS5eLmrLQEcANmKrsFl.jpg", ReleaseDate: "1994"},
	},
	models.MoodAdventurous: {
		{ID: "f_adv_1", Title: "Pirates of the Caribbean: The Curse of the Black Pearl", Overview: "A blacksmith teams up with a pirate to save his love.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/1Jw2GNbKwxLBzME2YkdBqtu1o9Y.jpg", ReleaseDate: "2003"},
		{ID: "f_adv_2", Title: "Indiana Jones and the Last Crusade", Overview: "Indiana searches for the Holy Grail.", Rating: 8.2, PosterURL: "https://image.tmdb.org/t/p/w500/4p1N2Qrt8j0H8xMHMHvtRxv9weZ.jpg", ReleaseDate: "1989"},
		{ID: "f_adv_3", Title: "Baahubali 2: The Conclusion", Overview: "Mahendra Baahubali avenges his father.", Rating: 7.9, PosterURL: "https://image.tmdb.org/t/p/w500/3GZbE2wAPO8nH9n1tFoZT3zhEXI.jpg", ReleaseDate: "2017"},
		{ID: "f_adv_4", Title: "Krrish", Overview: "An Indian superhero discovers his powers.", Rating: 6.8, PosterURL: "https://image.tmdb.org/t/p/w500/7pGdb9h9NP7VDaRao7IhiHBpjz2.jpg", ReleaseDate: "2006"},
		{ID: "f_adv_5", Title: "The Jungle Book", Overview: "Mowgli returns to the jungle in this live-action adaptation.", Rating: 7.4, PosterURL: "https://image.tmdb.org/t/p/w500/vOipe2myi26UDwP978hsYOrnUWC.jpg", ReleaseDate: "2016"},
		{ID: "f_adv_6", Title: "Guardians of the Galaxy", Overview: "A group of intergalactic criminals must save the universe.", Rating: 7.9, PosterURL: "https://image.tmdb.org/t/p/w500/y31QB9kn3XSudA15tV7UWQ9XLuW.jpg", ReleaseDate: "2014"},
		{ID: "f_adv_7", Title: "Jumanji: Welcome to the Jungle", Overview: "Teens get sucked into a video game adventure.", Rating: 6.9, PosterURL: "https://image.tmdb.org/t/p/w500/bXrZ5iHBEjH7WMidbUDQ0U2xbmr.jpg", ReleaseDate: "2017"},
		{ID: "f_adv_8", Title: "The Revenant", Overview: "A frontiersman fights for survival in the wilderness.", Rating: 8.0, PosterURL: "https://image.tmdb.org/t/p/w500/oXUWEc5i3wYyFnL1Ycu8ppxxPvs.jpg", ReleaseDate: "2015"},
	},
}

// generalPool tops up mood lists that run out of unique entries.
var generalPool = []models.Movie{
	{ID: "g_1", Title: "Inception", Overview: "A thief steals corporate secrets through dream-sharing.", Rating: 8.8, PosterURL: "https://image.tmdb.org/t/p/w500/edv5CZvWj09upOsy2Y6IwDhK8bt.jpg", ReleaseDate: "2010"},
	{ID: "g_2", Title: "Dangal", Overview: "A father trains his daughters to become wrestlers.", Rating: 8.3, PosterURL: "https://image.tmdb.org/t/p/w500/p2lVAcPuRPSO8Al6hDDGw0OgMi8.jpg", ReleaseDate: "2016"},
	{ID: "g_3", Title: "Andhadhun", Overview: "A blind pianist is swept up in a murder mystery.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/67ZdZXXAuv5Z7xL7sRKqzZo4PM5.jpg", ReleaseDate: "2018"},
	{ID: "g_4", Title: "Interstellar", Overview: "Explorers travel through a wormhole in space.", Rating: 8.6, PosterURL: "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg", ReleaseDate: "2014"},
	{ID: "g_5", Title: "Drishyam", Overview: "A father does whatever it takes to protect his family.", Rating: 8.1, PosterURL: "https://image.tmdb.org/t/p/w500/8eQof8I4eAbOeXtfLOcAfeUOLuO.jpg", ReleaseDate: "2013"},
}
