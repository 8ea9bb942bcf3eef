package seed

// track is one entry of the reference catalog.
type track struct {
	Title      string
	Genre      string
	ArtistName string
	CoverURL   string
}

var defaultTracks = []track{
	// Brasil
	{Title: "Envolver", Genre: "Reggaeton", ArtistName: "Anitta", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/c/c7/Envolver_-_Anitta.png"},
	{Title: "Idiota", Genre: "Pop", ArtistName: "Jão", CoverURL: "https://i.scdn.co/image/ab67616d0000b27376086200d394250d6eef8adf"},
	{Title: "Me Lambe", Genre: "Pop", ArtistName: "Jão", CoverURL: "https://static.wikia.nocookie.net/jao/images/2/22/SUPER_Capa_do_%C3%81lbum.png/revision/latest?cb=20231207144616&path-prefix=pt-br"},
	{Title: "Coringa", Genre: "Pop", ArtistName: "Jão", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/4/4f/Coringa_-_J%C3%A3o.png"},
	{Title: "Love Love", Genre: "Pop", ArtistName: "Luísa Sonza", CoverURL: "https://s2-g1.glbimg.com/PdfwBwbI2SO9O3f8ZyKjZKFPUp8=/0x0:2048x2048/1008x0/smart/filters:strip_icc()/i.s3.glbimg.com/v1/AUTH_59edd422c0c84a879bd37670ae4f538a/internal_photos/bs/2023/q/q/A40hpHRceiB3Ewik8t2w/luisasonzaescandalointimocapa.jpg"},
	{Title: "Penhasco", Genre: "Pop", ArtistName: "Luísa Sonza", CoverURL: "https://s2-g1.glbimg.com/PdfwBwbI2SO9O3f8ZyKjZKFPUp8=/0x0:2048x2048/1008x0/smart/filters:strip_icc()/i.s3.glbimg.com/v1/AUTH_59edd422c0c84a879bd37670ae4f538a/internal_photos/bs/2023/q/q/A40hpHRceiB3Ewik8t2w/luisasonzaescandalointimocapa.jpg"},
	{Title: "Chico", Genre: "MPB Pop", ArtistName: "Luísa Sonza", CoverURL: "https://s2-g1.glbimg.com/PdfwBwbI2SO9O3f8ZyKjZKFPUp8=/0x0:2048x2048/1008x0/smart/filters:strip_icc()/i.s3.glbimg.com/v1/AUTH_59edd422c0c84a879bd37670ae4f538a/internal_photos/bs/2023/q/q/A40hpHRceiB3Ewik8t2w/luisasonzaescandalointimocapa.jpg"},
	{Title: "Cachorrinhas", Genre: "Pop", ArtistName: "Luísa Sonza", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/0/08/Capa_de_Cachorrinhas_%28Single%29_por_Lu%C3%ADsa_Sonza.jpeg"},
	{Title: "A Queda", Genre: "Pop", ArtistName: "Gloria Groove", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/d/d8/A_Queda_-_Gloria_Groove.png"},
	{Title: "Bonekinha", Genre: "Pop", ArtistName: "Gloria Groove", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/2/26/Bonekinha_-_Gloria_Groove.png"},
	{Title: "Vermelho", Genre: "Funk Melody", ArtistName: "Gloria Groove", CoverURL: "https://i1.sndcdn.com/artworks-nVymX5g1gmqDspcF-0LzxWg-t500x500.jpg"},
	{Title: "Malvadão 3", Genre: "Trap", ArtistName: "Xamã", CoverURL: "https://i1.sndcdn.com/artworks-JF6pznmLkcZv6BUj-13K27A-t500x500.jpg"},
	{Title: "Sereia", Genre: "R&B", ArtistName: "L7NNON & Biel do Furduncinho", CoverURL: "https://i.scdn.co/image/ab67616d0000b27350dd8571c2fd2af11e35d8fe"},
	{Title: "Desenrola, Bate e Joga", Genre: "Funk", ArtistName: "L7NNON & Os Hawaianos", CoverURL: "https://cdn-images.dzcdn.net/images/cover/e8549155e888b77086f9642a357d0ef7/0x1900-000000-80-0-0.jpg"},
	{Title: "Ai Preto", Genre: "Funk", ArtistName: "L7NNON, Bianca, Biel", CoverURL: "https://cdn-images.dzcdn.net/images/cover/daa38f2cb1e80191011b98c517b9b1eb/500x500.jpg"},
	{Title: "Favela Vive 5", Genre: "Rap", ArtistName: "ADL, Major RD, MC Hariel", CoverURL: "https://i1.sndcdn.com/artworks-9XO1GZ9c4hSkKVH7-1w1hew-t500x500.jpg"},
	{Title: "Vivendo no Auge", Genre: "Trap", ArtistName: "Filipe Ret", CoverURL: "https://i1.sndcdn.com/artworks-6DpYtWUndBiRFSNY-9db7Jw-t1080x1080.jpg"},
	{Title: "Amor", Genre: "Funk", ArtistName: "MC Pedrinho", CoverURL: "https://images.suamusica.com.br/ymcg6mXavT48MwCRsE9o2sSkc7U=/500x500/filters:format(webp)/29523760/2180412/cd_cover.png"},
	{Title: "Nosso Quadro", Genre: "Sertanejo", ArtistName: "Ana Castela", CoverURL: "https://i1.sndcdn.com/artworks-FeouDUnfzuwC3xjL-dqcrCA-t1080x1080.jpg"},
	{Title: "Pipoco", Genre: "Sertanejo Pop", ArtistName: "Ana Castela & Melody", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/0/0d/Ana_Castela%2C_Melody_e_DJ_Chris_no_Beat_-_Pipoco.png"},
	{Title: "Seu Brilho Sumiu", Genre: "Sertanejo", ArtistName: "Israel & Rodolffo", CoverURL: "https://i.scdn.co/image/ab67616d0000b27399de1add582e2730cd763249"},
	{Title: "Erro Gostoso", Genre: "Sertanejo", ArtistName: "Simone Mendes", CoverURL: "https://image-cdn-ak.spotifycdn.com/image/ab67706c0000da84808d9c9be0f0d976019859ac"},
	{Title: "Leão", Genre: "R&B", ArtistName: "Marília Mendonça & Xamã", CoverURL: "https://i.scdn.co/image/ab67616d0000b2731ad875ebbdd67f6bb50514b5"},
	{Title: "Faixa Amarel", Genre: "Trap", ArtistName: "2ZDinizz", CoverURL: "https://cdn-images.dzcdn.net/images/cover/c77e5c5fd4586f3ef42b6492fbf7de76/0x1900-000000-80-0-0.jpg"},
	{Title: "Deixa Acontecer", Genre: "Pagode", ArtistName: "Grupo Revelação", CoverURL: "https://i1.sndcdn.com/artworks-IzeeG5dgohv1mIyC-RJyRQw-t500x500.jpg"},

	// Internacional
	{Title: "As It Was", Genre: "Pop", ArtistName: "Harry Styles", CoverURL: "https://rollingstone.com.br/wp-content/uploads/harry_house_amazon.jpg"},
	{Title: "Flowers", Genre: "Pop", ArtistName: "Miley Cyrus", CoverURL: "https://m.media-amazon.com/images/M/MV5BYzU3ZTFkZDctYmNlNi00ZjMxLTgwNGItYTI1YjdmOWJiNTQzXkEyXkFqcGc@._V1_FMjpg_UX1000_.jpg"},
	{Title: "Anti-Hero", Genre: "Pop", ArtistName: "Taylor Swift", CoverURL: "https://akamai.sscdn.co/tb/letras-blog/wp-content/uploads/2022/10/d057787-Midnights.jpg"},
	{Title: "Cruel Summer", Genre: "Pop", ArtistName: "Taylor Swift", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/1/19/Capa_de_Lover_por_Taylor_Swift_%282019%29.png"},
	{Title: "Unholy", Genre: "Pop", ArtistName: "Sam Smith & Kim Petras", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/d/da/Sam_Smith_e_Kim_Petras_-_Unholy.png"},
	{Title: "Kill Bill", Genre: "R&B", ArtistName: "SZA", CoverURL: "https://www.97fm.com.br/noticias/imagens/9628/1671031279.jpg"},
	{Title: "Good Days", Genre: "R&B", ArtistName: "SZA", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/4/42/SZA_Good_Days.png"},
	{Title: "Save Your Tears", Genre: "Pop", ArtistName: "The Weeknd", CoverURL: "https://cdn-images.dzcdn.net/images/cover/f520bf0be2e3cfc476824e75d20a164a/1900x1900-000000-80-0-0.jpg"},
	{Title: "Die for You", Genre: "R&B", ArtistName: "The Weeknd", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/3/39/The_Weeknd_-_Starboy.png"},
	{Title: "Eyes Closed", Genre: "Pop", ArtistName: "Imagine Dragons", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/3/3f/Night_Visions_Album_Cover.jpeg"},
	{Title: "Open Arms", Genre: "Trap/R&B", ArtistName: "SZA ft. Travis Scott", CoverURL: "https://cdn-images.dzcdn.net/images/cover/59bc09c9de157574278546857c0bd33d/500x500.jpg"},
	{Title: "INDUSTRY BABY", Genre: "Rap", ArtistName: "Lil Nas X & Jack Harlow", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/b/b9/Industry_Baby_-_Lil_Nas_X_%26_Jack_Harlow.png"},
	{Title: "Montero (Call Me By Your Name)", Genre: "Pop", ArtistName: "Lil Nas X", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/thumb/9/9f/Montero_-_Lil_Nas_X.png/250px-Montero_-_Lil_Nas_X.png"},
	{Title: "First Class", Genre: "Rap", ArtistName: "Jack Harlow", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/thumb/9/9f/Montero_-_Lil_Nas_X.png/250px-Montero_-_Lil_Nas_X.png"},
	{Title: "Super Freaky Girl", Genre: "Rap", ArtistName: "Nicki Minaj", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/thumb/e/e4/Nicki_Minaj_-_Super_Freaky_Girl_%28Roman_Remix%29.png/250px-Nicki_Minaj_-_Super_Freaky_Girl_%28Roman_Remix%29.png"},
	{Title: "Golden Hour", Genre: "Pop", ArtistName: "JVKE", CoverURL: "https://cdn-images.dzcdn.net/images/cover/e697f14e5e05fcc159ce7df2d175245f/0x1900-000000-80-0-0.jpg"},
	{Title: "Calm Down", Genre: "Afropop", ArtistName: "Rema", CoverURL: "https://lastfm.freetls.fastly.net/i/u/500x500/553ecf9c0b810188e9cd9b4dc5ce00ce.jpg"},
	{Title: "Peaches & Eggplants", Genre: "Rap", ArtistName: "Young Nudy", CoverURL: "https://upload.wikimedia.org/wikipedia/en/c/c5/Young_Nudy_Peaches_and_Eggplants_Remix.png"},
	{Title: "vampire", Genre: "Pop", ArtistName: "Olivia Rodrigo", CoverURL: "https://musicainstantanea.com.br/wp-content/uploads/2023/06/Olivia-Rodrigo-Guts.jpg"},
	{Title: "Paint the Town Red", Genre: "Rap", ArtistName: "Doja Cat", CoverURL: "https://lastfm.freetls.fastly.net/i/u/ar0/62ec57b826d21856fa65ec1d09cedd08.jpg"},
	{Title: "One Right Now", Genre: "Pop", ArtistName: "Post Malone & The Weeknd", CoverURL: "https://i.discogs.com/Gdr853Hn2bA_6DyStxny3xdxTYkoxcXfJK1zErqA7Rw/rs:fit/g:sm/q:40/h:300/w:300/czM6Ly9kaXNjb2dz/LWRhdGFiYXNlLWlt/YWdlcy9SLTIxMzYx/MDM2LTE2Mzk1OTU0/ODktNzg4MC5qcGVn.jpeg"},
	{Title: "I'm Good (Blue)", Genre: "Eletrônica", ArtistName: "David Guetta & Bebe Rexha", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/4/46/David_Guetta_-_I%27m_Good_%28Blue%29.jpg"},
	{Title: "Shivers", Genre: "Pop", ArtistName: "Ed Sheeran", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/8/8b/Shivers_-_Ed_Sheeran.png"},
	{Title: "Break My Soul", Genre: "Pop/Dance", ArtistName: "Beyoncé", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/9/92/Break_My_Soul_-_Beyonc%C3%A9.png"},
	{Title: "Greedy", Genre: "Pop", ArtistName: "Tate McRae", CoverURL: "https://upload.wikimedia.org/wikipedia/pt/9/9b/Greedy_-_Tate_McRae.webp"},
}
