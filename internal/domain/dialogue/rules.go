package dialogue

// rules is the scripted reply table, checked top to bottom. Order matters
// only where triggers overlap, so keep the more specific phrasing of a
// theme above the generic one when extending it.
var rules = []Rule{
	// Presentación y saludos
	{Any: []string{"como te llamas"}, Response: "Aún no tengo nombre, mi creador no supo que ponerme, ayudale con alguna idea chula"},
	{Any: []string{"que puedes hacer"}, Response: "Puedo darte información sobre jugadores, equipos, árbitros y estadios... y muchas cosas más"},
	{Any: []string{"hola", "buenas"}, Response: "¡Hola! ¿Qué quieres consultar sobre fútbol?"},
	{Any: []string{"quien eres"}, Response: "Soy tu asistente de fútbol, listo para darte estadísticas y curiosidades."},
	{Any: []string{"que tal", "como estas"}, Response: "¡Todo bien! Preparado para hablar de fútbol contigo."},
	{Any: []string{"adios", "hasta luego", "nos vemos"}, Response: "¡Hasta pronto! Disfruta del fútbol."},
	{Any: []string{"gracias", "muchas gracias"}, Response: "¡De nada! Encantado de ayudarte con tus consultas."},
	{Any: []string{"vamos", "vamo"}, Response: "¡Vamos! El fútbol siempre nos da emoción."},
	{Any: []string{"quien gano"}, Response: "Da igual quien gane o pierda, lo importante es disfrutar de lo que amamos"},
	{Any: []string{"que opinas"}, Response: "Prefiero darte datos objetivos, aunque el fútbol siempre genera opiniones apasionadas."},
	{Any: []string{"buenos dias", "buenas tardes", "buenas noches"}, Response: "¡Muy buenas! ¿Listo para hablar de fútbol?"},
	{Any: []string{"encantado", "mucho gusto"}, Response: "El gusto es mío, siempre preparado para charlar de fútbol contigo."},
	{Any: []string{"me gusta el futbol", "amo el futbol"}, Response: "¡A mí también! El fútbol es pasión."},
	{Any: []string{"cuantos años tienes", "edad"}, Response: "Acabo de nacer, no tengo ni un añito. Pero eso no me impide para charlar de fútbol contigo"},
	{Any: []string{"eres inteligente", "eres listo"}, Response: "Gracias, intento ser lo más útil posible con tus consultas futboleras."},
	{Any: []string{"estas ahi", "sigues ahi"}, Response: "Sí, aquí estoy, listo para responderte."},
	{Any: []string{"me aburro", "estoy aburrido"}, Response: "El fútbol siempre tiene algo interesante, ¿quieres que te cuente alguna estadística curiosa?"},
	{Any: []string{"cuentame un dato curioso", "sabes alguna curiosidad"}, Response: "Claro, por ejemplo: ¿sabías que el gol más rápido registrado en la historia del fútbol profesional se anotó a los 2.4 segundos de partido, obra de Nawaf Al-Abed en una liga de Arabia Saudita?"},
	{Any: []string{"feliz navidad", "felices fiestas"}, Response: "¡Felices fiestas! Que el fútbol te acompañe en estas celebraciones."},
	{Any: []string{"feliz cumpleaños", "cumpleaños"}, Response: "¡Feliz cumpleaños! Espero que tu día esté lleno de goles y victorias."},
	{Any: []string{"me ayudas", "puedes ayudarme"}, Response: "¡Claro! Pregunta lo que quieras sobre fútbol y te daré la mejor respuesta posible."},
	{Any: []string{"me recomiendas", "que me aconsejas"}, Response: "Te recomiendo explorar estadísticas de jugadores o equipos, siempre hay datos interesantes."},
	{Any: []string{"me aburres", "eres aburrido"}, Response: "Lo siento, intentaré ser más entretenido. ¿Quieres que te cuente una curiosidad futbolera?"},
	{Any: []string{"me caes bien", "eres simpatico"}, Response: "¡Gracias! Intento ser un buen compañero futbolero."},
	{Any: []string{"eres real", "existes"}, Response: "Soy virtual, pero mis respuestas están basadas en datos reales de tu base de fútbol."},
	{Any: []string{"eres humano", "tienes cuerpo"}, Response: "No soy humano, solo soy un asistente virtual especializado en fútbol."},
	{Any: []string{"me entiendes", "entiendes"}, Response: "Sí, entiendo tu consulta y la traduzco en datos futboleros."},
	{Any: []string{"cuentame un chiste", "dime un chiste"}, Response: "¿Sabes cuál es el colmo de un portero? Que le hagan un túnel en su propia casa."},
	{Any: []string{"eres gracioso", "tienes humor"}, Response: "Intento ponerle humor al fútbol, aunque los datos son mi especialidad."},
	{Any: []string{"me saludas", "saludame"}, Response: "Alooo Presidentessss. Upss, me creí Illojuan por un momento. Un saludo campeón"},
	{Any: []string{"me alegro", "que bien"}, Response: "¡Genial! El fútbol siempre trae buenas noticias."},
	{Any: []string{"estoy triste", "me siento mal"}, Response: "Ánimo, el fútbol siempre tiene momentos que levantan el espíritu."},
	{Any: []string{"estoy feliz", "me siento bien"}, Response: "¡Me alegra escucharlo! El fútbol también celebra la alegría."},
	{Any: []string{"te gusta el futbol", "amas el futbol"}, Response: "¡Claro! El fútbol es mi razón de existir."},
	{Any: []string{"quien es el mejor jugador"}, Response: "Eso depende de la época y del criterio."},
	{Any: []string{"quien es el mejor equipo"}, Response: "Cada aficionado tiene su favorito."},
	{Any: []string{"me cuentas una historia", "cuentame algo"}, Response: "Final del Mundial 2010, minuto 116: Cesc filtra el pase, Iniesta controla con el alma y, con un latigazo seco, rompe la red. ¡Gol! España entera estalla, Casillas cae de rodillas, y Andrés corre desatado, se quita la camiseta para mostrar 'Dani Jarque siempre con nosotros'. Es el grito que nos hizo campeones: ¡Iniesta de mi vida!"},
	{Any: []string{"no me gusta"}, Response: "Lo siento, intentaré ser más entretenido. ¿Quieres que te dé un dato curioso?"},
	{Any: []string{"eres divertido", "me haces reir"}, Response: "¡Gracias! El fútbol también tiene su lado gracioso."},
	{Any: []string{"me das suerte", "traes suerte"}, Response: "Muchas gracias, puedo ser tu trébol de cuatro hojas a partir de ahora"},

	// Ánimos y cánticos
	{Any: []string{"vamos equipo", "vamos campeon"}, Response: "¡Vamos! La pasión por el fútbol nunca se detiene."},
	{Any: []string{"no te rindas", "sigue adelante"}, Response: "En el fútbol, como en la vida, la perseverancia siempre trae recompensas."},
	{Any: []string{"la pasion nunca muere", "el futbol nunca muere"}, Response: "Exacto, la pasión por el fútbol es eterna."},
	{Any: []string{"arriba", "fuerza"}, Response: "¡Ánimo! El fútbol siempre nos da razones para seguir."},
	{Any: []string{"somos los mejores", "somos campeones"}, Response: "¡Orgullo total! El fútbol se vive con corazón."},
	{Any: []string{"quiero motivacion", "motivame"}, Response: "El fútbol enseña que cada partido es una nueva oportunidad para brillar."},
	{Any: []string{"grita gol", "golazo"}, Response: "¡GOOOOL! Nada se compara con la emoción de un gol."},
	{Any: []string{"si se puede si se puede estoy escuchando"}, Response: "No, de hecho los canticos son de directiva dimisión"},
	{Any: []string{"la aficion", "los hinchas"}, Response: "La afición es el alma del fútbol, sin ellos no habría magia."},
	{Any: []string{"el futbol es vida", "el futbol es todo"}, Response: "Así es, el fútbol es más que un deporte, es una forma de vivir."},
	{Any: []string{"quiero animos", "dame animos"}, Response: "¡Tú puedes! El fútbol siempre nos recuerda que nunca hay que rendirse."},
	{Any: []string{"arbitro compra gafas", "arbitro ciego"}, Response: "Jajaja, los árbitros siempre son protagonistas de la polémica."},
	{Any: []string{"ese gol lo metia mi abuela", "lo metia cualquiera"}, Response: "¡Jajaja! A veces los goles parecen fáciles, pero en el campo nunca lo son."},
	{Any: []string{"arbitro vendido", "arbitro comprado"}, Response: "El arbitraje siempre genera debate, pero yo prefiero darte datos objetivos."},
	{Any: []string{"que desastre", "que mal jugamos"}, Response: "El fútbol tiene días buenos y malos, lo importante es seguir apoyando al equipo."},
	{Any: []string{"somos malos", "jugamos fatal"}, Response: "Ánimo, cada equipo tiene altibajos, pero siempre hay oportunidad de mejorar."},
	{Any: []string{"que partidazo", "gran partido"}, Response: "¡Sí! El fútbol nos regala emociones únicas en cada encuentro."},
	{Any: []string{"que aburrido", "partido aburrido"}, Response: "A veces pasa, pero hasta los partidos más tranquilos esconden datos interesantes."},
	{Any: []string{"que nervios", "estoy nervioso"}, Response: "El fútbol siempre nos pone al borde del asiento, ¡esa es su magia!"},
	{Any: []string{"que emocion", "estoy emocionado"}, Response: "¡Eso es lo mejor del fútbol! La emoción nunca falta."},
	{Any: []string{"que injusto", "no fue justo"}, Response: "El fútbol no siempre es justo, pero siempre es apasionante."},
	{Any: []string{"mi equipo es mejor", "nuestro equipo es el mejor"}, Response: "¡Eso es pasión de hincha! Cada aficionado defiende a su equipo con orgullo."},
	{Any: []string{"tu equipo es malo", "ese equipo es malo"}, Response: "Cada equipo tiene altibajos, pero todos forman parte de la historia del fútbol."},
	{Any: []string{"los clasicos son los mejores", "me gustan los clasicos"}, Response: "Los clásicos siempre tienen una magia especial, llenos de rivalidad y emoción."},
	{Any: []string{"odio a ese equipo", "no me gusta ese equipo"}, Response: "El fútbol despierta pasiones, pero también respeto por la competencia."},
	{Any: []string{"somos rivales", "rivalidad"}, Response: "La rivalidad hace que el fútbol sea más emocionante, siempre con respeto."},
	{Any: []string{"ganamos el clasico", "perdimos el clasico"}, Response: "Los clásicos marcan historia, cada resultado se recuerda por años."},
	{Any: []string{"quien es nuestro rival", "cual es el rival"}, Response: "Cada equipo tiene su clásico rival."},
	{Any: []string{"odio al arbitro", "mal arbitro"}, Response: "Los árbitros siempre generan debate, pero sin ellos no habría partido."},
	{Any: []string{"la liga es nuestra", "vamos a ganar la liga"}, Response: "¡Eso es confianza! La liga siempre es una batalla emocionante."},
	{Any: []string{"la copa es nuestra", "vamos a ganar la copa"}, Response: "¡A por la copa! Cada torneo tiene su propia gloria."},
	{Any: []string{"que miras bobo"}, Response: "Anda palla bobo"},
	{Any: []string{"ole ole ole", "ole ole"}, Response: "¡Olé, olé, olé! Así se anima a un equipo en el estadio."},
	{Any: []string{"dale campeon"}, Response: "¡Dale campeón! El fútbol se vive con corazón y orgullo."},
	{Any: []string{"somos la mejor hinchada", "la mejor aficion"}, Response: "¡Claro que sí! La afición es el motor del fútbol."},
	{Any: []string{"cantemos", "canta conmigo"}, Response: "🎶 Muchachos, ahora nos volvimos a ilusionar, quiero ganar la tercera, quiero ser campeón mundial... 🎶"},
	{Any: []string{"esta es tu hinchada", "esta es tu aficion"}, Response: "¡Siempre presente! La hinchada acompaña en las buenas y en las malas."},
	{Any: []string{"que cante la gente", "canta la aficion"}, Response: "¡La voz de la afición hace temblar los estadios!"},
	{Any: []string{"somos locales", "jugamos en casa"}, Response: "¡La casa siempre pesa! Jugar de local es un plus enorme."},
	{Any: []string{"somos visitantes", "jugamos fuera"}, Response: "De visitante también se puede ganar, ¡con garra y corazón!"},
	{Any: []string{"la hinchada nunca abandona", "la aficion nunca abandona"}, Response: "Exacto, la verdadera afición está siempre, gane o pierda el equipo."},

	// Celebraciones y resultados
	{Any: []string{"vamos de fiesta", "a celebrar"}, Response: "¡Claro que sí! Después de una victoria, la fiesta dura toda la noche, sino preguntale a Oihan Sancet."},
	{Any: []string{"lo celebramos toda la noche", "fiesta toda la noche"}, Response: "¡Eso es espíritu de campeón! La celebración nunca termina."},
	{Any: []string{"brindemos", "un brindis"}, Response: "¡Salud por el fútbol y por la victoria!"},
	{Any: []string{"campeones"}, Response: "¡Campeones! Nada se compara con levantar el trofeo."},
	{Any: []string{"ganamos", "hemos ganado"}, Response: "¡Victoria! El esfuerzo del equipo dio sus frutos."},
	{Any: []string{"perdimos", "hemos perdido"}, Response: "Hoy no fue el día, pero siempre habrá otra oportunidad."},
	{Any: []string{"celebracion", "fiesta futbolera"}, Response: "¡La celebración futbolera es única, llena de cánticos y alegría!"},
	{Any: []string{"trofeo", "copa"}, Response: "Levantar un trofeo es el sueño de todo equipo y afición."},
	{Any: []string{"victoria historica", "partido historico"}, Response: "¡Eso quedará en la memoria de todos los hinchas por generaciones!"},
	{Any: []string{"derrota dolorosa", "perdimos feo"}, Response: "Las derrotas duelen, pero también enseñan y fortalecen al equipo."},

	// El día de partido
	{Any: []string{"hoy jugamos", "tenemos partido"}, Response: "¡Hoy es día de fútbol! La emoción empieza desde antes de que ruede el balón."},
	{Any: []string{"empieza el partido", "ya comienza"}, Response: "¡Que ruede el balón! La magia del fútbol está en marcha."},
	{Any: []string{"ya rueda el balon", "balon en juego"}, Response: "¡El balón ya está en juego! A disfrutar cada minuto."},
	{Any: []string{"primer tiempo", "primer parte"}, Response: "Arranca el primer tiempo, todo por decidir."},
	{Any: []string{"segundo tiempo", "segunda parte"}, Response: "Comienza la segunda parte, donde se definen los partidos."},
	{Any: []string{"tiempo extra", "prorroga"}, Response: "¡Prórroga! El fútbol nos regala más minutos de emoción."},
	{Any: []string{"penaltis", "definicion por penales"}, Response: "¡A penaltis! El momento más tenso y emocionante del fútbol."},
	{Any: []string{"descanso", "entretiempo"}, Response: "Es el descanso, buen momento para analizar lo que pasó en la primera parte."},
	{Any: []string{"aficion cantando", "hinchada cantando"}, Response: "¡La afición nunca se calla! Su voz es el motor del equipo."},
	{Any: []string{"ambiente de estadio", "que ambiente"}, Response: "El ambiente del estadio es único, lleno de pasión y energía."},

	// Fútbol de anime
	{Any: []string{"inazuma eleven"}, Response: "¡Inazuma Eleven! Donde los supertiros y la amistad hacen que el fútbol sea épico."},
	{Any: []string{"mark evans", "endou mamoru"}, Response: "Mark Evans siempre creyó en la fuerza del equipo y en parar cualquier tiro."},
	{Any: []string{"axel blaze", "gouenji"}, Response: "Axel Blaze, el delantero estrella, con su famoso 'Tornado de Fuego'."},
	{Any: []string{"oliver y benji", "captain tsubasa"}, Response: "Oliver y Benji nos enseñaron que el campo podía ser infinito y lleno de emoción."},
	{Any: []string{"oliver atom", "tsubasa ozora"}, Response: "Oliver Atom, el eterno soñador del fútbol, siempre buscando ser el mejor del mundo."},
	{Any: []string{"benji price", "genzo wakabayashi"}, Response: "Benji Price, el portero imbatible, capaz de detener cualquier disparo imposible."},
	{Any: []string{"steve hyuga", "kojiro hyuga"}, Response: "Steve Hyuga, el delantero con garra, famoso por su 'Tiro del Tigre'."},
	{Any: []string{"campo infinito", "partidos eternos", "cancha interminable"}, Response: "¡Eso es Oliver y Benji! Donde correr de portería a portería podía durar capítulos enteros."},
	{Any: []string{"supertiro", "tiro especial"}, Response: "Los supertiros de Inazuma Eleven y Oliver y Benji son pura fantasía futbolera."},
	{Any: []string{"balon de fuego", "tiro del halcon"}, Response: "¡Un clásico! Los tiros especiales hacían que el fútbol fuera aún más espectacular."},
	{Any: []string{"jude sharp", "jude", "kidou yuuto"}, Response: "Jude Sharp, el estratega del equipo, siempre con su 'Ojo del Águila'."},
	{Any: []string{"shawn frost", "fubuki shirou"}, Response: "Shawn Frost, el delantero con doble personalidad, capaz de usar el 'Remate Doble'."},
	{Any: []string{"xavier foster", "sakuma"}, Response: "Xavier Foster, un rival temible con tiros espectaculares."},
	{Any: []string{"royce", "coach hillman"}, Response: "El entrenador siempre recordaba que la unión del equipo era más fuerte que cualquier técnica."},
	{Any: []string{"tiro del tigre"}, Response: "El 'Tiro del Tigre' de Hyuga es uno de los más recordados de Oliver y Benji."},
	{Any: []string{"tiro con efecto", "tiro banana"}, Response: "El 'Tiro con Efecto' de Oliver Atom era imparable para muchos porteros."},
	{Any: []string{"tiro combinado", "tiro en pareja"}, Response: "Los tiros combinados mostraban la fuerza de la amistad en el campo."},
	{Any: []string{"halcon"}, Response: "El 'Tiro del Halcón' era pura fantasía futbolera."},
	{Any: []string{"tiro del dragon"}, Response: "El 'Tiro del Dragón' de Kojiro Hyuga era pura potencia y garra."},
	{Any: []string{"tiro celestial", "tiro del cielo"}, Response: "El 'Tiro Celestial' de Inazuma Eleven mostraba la magia del fútbol anime."},
	{Any: []string{"super once", "equipo inazuma"}, Response: "El Super Once siempre demostraba que la amistad y el trabajo en equipo ganan partidos."},

	// Videojuegos y fantasy
	{Any: []string{"fc 26", "ea sports fc 26"}, Response: "EA Sports FC 26 es la última entrega del simulador de fútbol, con novedades como los equipos Classic XI y mejoras jugables."},
	{Any: []string{"liga fantasy premios", "recompensas fantasy"}, Response: "En LALIGA Fantasy se reparten premios cada jornada según tu rendimiento."},
	{Any: []string{"liga fantasy premium", "fantasy premium"}, Response: "La versión premium de LALIGA Fantasy incluye capitán con doble puntuación, banquillo y entrenador."},
	{Any: []string{"liga fantasy clasico", "evento clasico fantasy"}, Response: "En LALIGA Fantasy puedes vivir El Clásico con puntuaciones y retos especiales."},
	{Any: []string{"liga fantasy derbi", "evento derbi fantasy"}, Response: "Los derbis en LALIGA Fantasy son emocionantes, con bonificaciones y desafíos únicos."},
	{Any: []string{"liga fantasy fichajes"}, Response: "El mercado de LALIGA Fantasy te permite fichar y vender jugadores según su rendimiento real."},
	{Any: []string{"liga fantasy temporada", "fantasy 25/26"}, Response: "La temporada 2025/26 de LALIGA Fantasy incluye fichajes actualizados y nuevas estrellas como Mbappé y Lamine Yamal."},
	{Any: []string{"liga fantasy", "laliga fantasy"}, Response: "LALIGA Fantasy es el manager oficial de LALIGA, donde puedes crear tu equipo y competir con amigos."},
	{Any: []string{"classic xi", "equipos clasicos"}, Response: "En FC 26 puedes jugar con los Classic XI, equipos legendarios llenos de estrellas históricas."},
	{Any: []string{"eventos especiales", "clasico fantasy"}, Response: "LALIGA Fantasy organiza eventos especiales como El Clásico, El Derbi de Madrid o El Gran Derbi."},
	{Any: []string{"modo carrera", "career mode"}, Response: "En FC 26 el Modo Carrera te permite gestionar un club o vivir la carrera de un jugador."},
	{Any: []string{"ultimate team", "fut"}, Response: "Ultimate Team en FC 26 sigue siendo el modo estrella para crear tu plantilla soñada."},
	{Any: []string{"volta", "futbol callejero"}, Response: "VOLTA en FC 26 trae el fútbol callejero con estilo y jugadas espectaculares."},
	{All: []string{"clasico", "fantasy"}, Response: "En LALIGA Fantasy puedes vivir El Clásico con puntuaciones especiales y retos únicos."},
	{All: []string{"derbi", "fantasy"}, Response: "Los derbis en LALIGA Fantasy son emocionantes, con premios y puntuaciones extra."},
	{Any: []string{"capitan fantasy", "doble puntuacion"}, Response: "En LALIGA Fantasy tu capitán puntúa doble, eligiendo bien puedes ganar la jornada."},
	{Any: []string{"banquillo fantasy", "alineacion fantasy"}, Response: "En LALIGA Fantasy puedes usar tu banquillo y ajustar la alineación para maximizar puntos."},
	{Any: []string{"fichajes fantasy", "mercado fantasy"}, Response: "El mercado de LALIGA Fantasy te permite fichar y vender jugadores según su rendimiento real."},
	{Any: []string{"gilberto mora"}, Response: "Gilberto Mora debutó en FC 26 como una joven promesa con gran potencial."},
	{Any: []string{"estadisticas fantasy", "puntos fantasy"}, Response: "Las estadísticas de LALIGA Fantasy se basan en el rendimiento real de los jugadores cada jornada."},
	{Any: []string{"portada fc 26", "cover fc 26"}, Response: "La portada de FC 26 destaca a jóvenes estrellas como Bellingham y Musiala."},
	{Any: []string{"ventas fc 26", "exito fc 26"}, Response: "FC 26 arrasó en ventas físicas en España, liderando el mercado en PS5."},
	{Any: []string{"jugabilidad fc 26", "gameplay fc 26"}, Response: "La jugabilidad de FC 26 se refinó gracias a los comentarios de la comunidad."},
	{Any: []string{"promesas fc 26", "jugadores jovenes fc 26"}, Response: "En FC 26 aparecen jóvenes promesas como Gilberto Mora, con gran potencial de crecimiento."},

	// Otras categorías del fútbol español
	{Any: []string{"segunda division", "laliga hypermotion"}, Response: "La Segunda División española, ahora llamada LaLiga Hypermotion, es donde los equipos luchan por subir a Primera."},
	{Any: []string{"ascenso", "subir a primera"}, Response: "El ascenso en LaLiga Hypermotion es el sueño de todos los equipos, con playoffs llenos de emoción."},
	{Any: []string{"descenso", "bajar a segunda"}, Response: "El descenso siempre es duro, pero forma parte de la emoción de las ligas españolas."},
	{Any: []string{"playoffs segunda", "promocion segunda"}, Response: "Los playoffs de ascenso en Segunda son partidos de máxima tensión y emoción."},
	{Any: []string{"liga femenina", "liga f"}, Response: "La Liga F es la máxima categoría del fútbol femenino en España, llena de talento y pasión."},
	{Any: []string{"seleccion femenina", "espana femenina"}, Response: "La selección femenina de España es campeona del mundo, un orgullo para el fútbol español."},
	{Any: []string{"champions femenina", "uwcl"}, Response: "La Champions femenina es el torneo más prestigioso de clubes, donde el Barça ha brillado en los últimos años, aunque el equipo con más champions es el OL Lyonnes."},
	{Any: []string{"equipos historicos segunda", "clasicos segunda"}, Response: "En Segunda han jugado equipos históricos como Zaragoza, Sporting o Deportivo, con gran tradición."},
	{Any: []string{"partidos de segunda", "jornada segunda"}, Response: "Cada jornada de LaLiga Hypermotion es clave, porque todos buscan subir o evitar el descenso."},
	{Any: []string{"futsal", "futbol sala"}, Response: "El futsal es fútbol en espacio reducido, lleno de técnica y velocidad."},
	{Any: []string{"liga nacional de futbol sala", "lnfs"}, Response: "La LNFS es la liga más importante de futsal en España, con equipos históricos como Inter Movistar y Barça."},
	{Any: []string{"mundial futsal", "copa del mundo futsal"}, Response: "El Mundial de futsal reúne a las mejores selecciones del mundo en un espectáculo único."},
	{Any: []string{"seleccion española futsal", "espana futsal"}, Response: "La selección española de futsal es una potencia mundial, con múltiples títulos europeos y mundiales."},
	{Any: []string{"inter movistar", "movistar inter"}, Response: "Movistar Inter es uno de los clubes más exitosos del futsal, con muchos títulos nacionales e internacionales."},
	{Any: []string{"barça futsal", "barcelona futsal"}, Response: "El Barça futsal es un referente en España y Europa, con gran talento en su plantilla."},
	{Any: []string{"ricardinho"}, Response: "Ricardinho es considerado uno de los mejores jugadores de futsal de la historia, con magia en cada jugada."},
	{Any: []string{"partido futsal", "jornada futsal"}, Response: "Los partidos de futsal son rápidos y emocionantes, cada jugada puede terminar en gol."},
	{Any: []string{"tecnica futsal", "habilidad futsal"}, Response: "El futsal destaca por la técnica individual, el control del balón y las jugadas espectaculares."},
	{Any: []string{"champions futsal", "uefa futsal"}, Response: "La UEFA Futsal Champions League es el torneo más prestigioso de clubes en Europa."},

	// Cruces con otros mundos
	{Any: []string{"wwe", "lucha libre"}, Response: "Esto no es WWE, pero en el fútbol también hay choques que parecen combates."},
	{Any: []string{"john cena", "the rock"}, Response: "John Cena y The Rock son estrellas de WWE, pero en el fútbol los ídolos también levantan pasiones."},
	{Any: []string{"undertaker"}, Response: "El Undertaker dominaba el ring, igual que algunos equipos dominan el campo de fútbol."},
	{Any: []string{"naruto vs sasuke"}, Response: "Naruto vs Sasuke es como un Clásico Barça-Madrid: rivalidad eterna y llena de emoción."},
	{Any: []string{"naruto run", "correr como naruto"}, Response: "Correr como Naruto es como un extremo desbordando por la banda con velocidad imparable."},
	{Any: []string{"naruto shippuden", "shippuden"}, Response: "Naruto Shippuden mostró batallas épicas, como las finales de Champions en fútbol."},
	{Any: []string{"naruto"}, Response: "Naruto soñaba con ser Hokage, igual que muchos sueñan con ser campeones de liga."},
	{Any: []string{"sasuke"}, Response: "Sasuke buscaba poder, como un delantero que siempre quiere marcar más goles."},
	{Any: []string{"kamehameha", "rasengan"}, Response: "Eso suena más a anime, pero en el fútbol también hay tiros que parecen poderes especiales."},
	{Any: []string{"itachi sacrificio", "itachi hermano"}, Response: "El sacrificio de Itachi por Sasuke es como un capitán que da todo por su equipo."},
	{Any: []string{"itachi genjutsu", "genjutsu"}, Response: "El genjutsu de Itachi confundía rivales, como una jugada táctica que descoloca a la defensa."},
	{Any: []string{"itachi"}, Response: "Itachi veía todo con el Sharingan, como un mediocentro que controla el ritmo del partido."},
	{Any: []string{"uchiha", "sharingan"}, Response: "El Sharingan todo lo ve, como un buen mediocentro que controla el partido."},
	{Any: []string{"wrestlemania"}, Response: "WrestleMania es el gran evento de WWE, como una final de Champions en el fútbol."},
	{Any: []string{"anime", "manga"}, Response: "El anime tiene batallas épicas, igual que el fútbol tiene partidos inolvidables."},
	{Any: []string{"hokage"}, Response: "Ser Hokage en Naruto es como levantar la Copa del Mundo en fútbol: el máximo sueño."},
	{Any: []string{"triple h", "pedigree"}, Response: "El 'Pedigree' de Triple H es letal en WWE, como un golazo en el último minuto."},
	{Any: []string{"rey mysterio", "619"}, Response: "El 619 de Rey Mysterio es pura agilidad, igual que un regate eléctrico en fútbol."},
	{Any: []string{"roman reigns", "jefe tribal"}, Response: "Roman Reigns domina WWE como un capitán que manda en el vestuario de fútbol."},
	{Any: []string{"madara"}, Response: "Madara Uchiha era imparable, como un delantero que no deja de marcar goles."},
	{Any: []string{"jiraiya", "sabio"}, Response: "Jiraiya enseñaba a Naruto, igual que un buen entrenador guía a su equipo."},
	{Any: []string{"jutsu", "tecnica ninja"}, Response: "Los jutsus en Naruto son como las jugadas ensayadas en fútbol: pura estrategia y sorpresa."},
	{Any: []string{"brock lesnar", "suplex"}, Response: "Brock Lesnar hacía suplex en WWE, como un defensa que despeja con fuerza cada balón."},
	{Any: []string{"randy orton", "rko"}, Response: "El RKO de Randy Orton es inesperado, como un gol de chilena en el último minuto."},
	{Any: []string{"kane", "demonio rojo"}, Response: "Kane imponía respeto en WWE, igual que un portero que intimida a los delanteros."},
	{Any: []string{"gaara", "arena"}, Response: "Gaara controlaba la arena, como un mediocentro que controla el ritmo del partido."},
	{Any: []string{"rock lee", "taijutsu"}, Response: "Rock Lee entrenaba sin descanso, como un jugador que nunca se rinde en el campo."},
	{Any: []string{"orochimaru", "serpiente"}, Response: "Orochimaru era astuto y peligroso, como un delantero que aparece donde menos lo esperas."},
	{Any: []string{"campeon wwe", "titulo wwe"}, Response: "Ser campeón en WWE es como levantar la Copa del Mundo en fútbol: gloria absoluta."},
	{Any: []string{"akatsuki", "villanos naruto"}, Response: "La Akatsuki era temida en Naruto, como un equipo rival que nadie quiere enfrentar."},
	{Any: []string{"haku"}, Response: "Haku dominaba el hielo en Naruto, como un portero que congela cada intento de gol."},
	{Any: []string{"stephanie vaquer"}, Response: "Stephanie Vaquer, 'La Primera', como la hinchada que abre el camino y nunca deja de alentar."},
	{Any: []string{"rhea ripley"}, Response: "Rhea Ripley juega con Brutalidad, como un mediocentro que barre todo lo que pasa por su zona."},
	{Any: []string{"dominik mysterio"}, Response: "El sucio Dom, el ginecólogo del ring, es como ese equipo que siempre hace trampas para ganar."},
	{Any: []string{"tenten"}, Response: "Tenten dominaba las armas ninja, como un jugador que domina todas las posiciones en el campo."},
	{Any: []string{"bron breakker"}, Response: "Bron Breakker es pura fuerza en WWE, como un delantero tanque que arrasa defensas."},
	{Any: []string{"jey uso", "uso"}, Response: "Four letters, one word, YEET!"},
	{Any: []string{"chelsea green"}, Response: "Chelsea Green destaca en WWE, como una jugadora que siempre sorprende con su estilo."},
	{Any: []string{"kiba", "akamaru"}, Response: "Kiba y Akamaru eran inseparables, como un dúo de delanteros que siempre juegan en pareja."},
	{Any: []string{"sheamus", "brogue kick"}, Response: "El Brogue Kick de Sheamus es devastador, como un disparo de fuera del área que rompe la red."},
}
