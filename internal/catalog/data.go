package catalog

// Bundled template data. Static content, loaded once via Default().

var defaultTemplates = map[Category][]Template{
	CategoryStyle: {
		// Realistic
		{ID: "style-photorealistic", Name: "Photorealistic", Description: "Hyper-realistic, photograph-like quality", PromptFragment: "photorealistic, ultra-realistic, photograph quality, highly detailed"},
		{ID: "style-hyperrealistic", Name: "Hyperrealistic", Description: "Beyond photo-real with enhanced details", PromptFragment: "hyperrealistic, extreme detail, perfect clarity, lifelike rendering"},
		{ID: "style-raw-photo", Name: "Raw Photography", Description: "Unprocessed, natural photo look", PromptFragment: "raw photography style, unprocessed look, natural colors, authentic"},
		{ID: "style-film-photography", Name: "Film Photography", Description: "Analog film aesthetic with grain", PromptFragment: "film photography, analog film, natural grain, nostalgic color tones"},
		// 3D & CGI
		{ID: "style-3d-animation", Name: "3D Animation", Description: "Modern 3D animated movie style like Pixar", PromptFragment: "3D animation style, Pixar-like, CGI rendering, smooth surfaces"},
		{ID: "style-3d-render", Name: "3D Render", Description: "Clean CGI rendered look", PromptFragment: "3D render, CGI quality, clean surfaces, professional rendering"},
		{ID: "style-unreal-engine", Name: "Unreal Engine", Description: "Game engine cinematic quality", PromptFragment: "Unreal Engine style, game engine quality, cinematic rendering, RTX lighting"},
		{ID: "style-octane-render", Name: "Octane Render", Description: "High-end GPU rendering aesthetic", PromptFragment: "Octane render, GPU rendering, subsurface scattering, realistic materials"},
		{ID: "style-claymation", Name: "Claymation", Description: "Stop-motion clay animation style", PromptFragment: "claymation style, stop-motion, clay textures, handcrafted look"},
		// Illustration & Digital Art
		{ID: "style-digital-art", Name: "Digital Art", Description: "Modern digital illustration style", PromptFragment: "digital art, digital illustration, clean lines, vibrant colors"},
		{ID: "style-concept-art", Name: "Concept Art", Description: "Professional concept art for games/movies", PromptFragment: "concept art style, professional illustration, detailed environments"},
		{ID: "style-matte-painting", Name: "Matte Painting", Description: "Cinematic background painting style", PromptFragment: "matte painting, cinematic background, epic scale, detailed landscapes"},
		{ID: "style-vector", Name: "Vector Art", Description: "Clean, scalable vector illustration", PromptFragment: "vector art style, clean lines, flat colors, scalable illustration"},
		{ID: "style-flat-design", Name: "Flat Design", Description: "Minimalist flat illustration style", PromptFragment: "flat design, minimalist illustration, no gradients, simple shapes"},
		{ID: "style-isometric", Name: "Isometric", Description: "Isometric 3D illustration style", PromptFragment: "isometric design, 2.5D perspective, clean geometric shapes"},
		// Traditional Art
		{ID: "style-oil-painting", Name: "Oil Painting", Description: "Classical oil painting with rich textures", PromptFragment: "oil painting style, rich textures, classical art, brush stroke details"},
		{ID: "style-watercolor", Name: "Watercolor", Description: "Soft, flowing watercolor painting aesthetic", PromptFragment: "watercolor painting, soft washes, flowing colors, artistic brush strokes"},
		{ID: "style-acrylic", Name: "Acrylic Painting", Description: "Bold acrylic paint texture", PromptFragment: "acrylic painting, bold strokes, vibrant pigments, textured surface"},
		{ID: "style-gouache", Name: "Gouache", Description: "Matte opaque watercolor style", PromptFragment: "gouache painting, matte finish, opaque colors, vintage illustration"},
		{ID: "style-pencil-sketch", Name: "Pencil Sketch", Description: "Hand-drawn pencil illustration", PromptFragment: "pencil sketch, hand-drawn, graphite shading, sketch aesthetic"},
		{ID: "style-charcoal", Name: "Charcoal Drawing", Description: "Expressive charcoal sketch style", PromptFragment: "charcoal drawing, expressive strokes, dramatic contrast, fine art"},
		{ID: "style-ink-wash", Name: "Ink Wash", Description: "Traditional ink wash painting style", PromptFragment: "ink wash painting, sumi-e style, brush strokes, monochromatic elegance"},
		{ID: "style-pastel", Name: "Pastel Art", Description: "Soft pastel chalk artwork", PromptFragment: "pastel art, soft chalky texture, gentle colors, dreamy aesthetic"},
		// Animation Styles
		{ID: "style-anime", Name: "Anime", Description: "Japanese animation style with expressive features", PromptFragment: "anime style, Japanese animation, expressive eyes, cel shading"},
		{ID: "style-manga", Name: "Manga", Description: "Japanese comic black and white style", PromptFragment: "manga style, black and white, screentones, dynamic lines, Japanese comic"},
		{ID: "style-studio-ghibli", Name: "Studio Ghibli", Description: "Whimsical Ghibli animation style", PromptFragment: "Studio Ghibli style, whimsical, hand-painted backgrounds, warm atmosphere"},
		{ID: "style-cartoon", Name: "Cartoon", Description: "Western cartoon animation style", PromptFragment: "cartoon style, animated, exaggerated features, bold outlines"},
		{ID: "style-disney", Name: "Disney Classic", Description: "Classic Disney animation aesthetic", PromptFragment: "Disney animation style, classic hand-drawn, expressive characters, magical"},
		{ID: "style-comic-book", Name: "Comic Book", Description: "Western comic book illustration", PromptFragment: "comic book style, bold lines, halftone dots, dynamic poses, superhero aesthetic"},
		{ID: "style-graphic-novel", Name: "Graphic Novel", Description: "Mature graphic novel illustration", PromptFragment: "graphic novel style, detailed illustration, dramatic shading, mature themes"},
		// Vintage & Retro
		{ID: "style-vintage", Name: "Vintage", Description: "Retro, nostalgic aesthetic with aged tones", PromptFragment: "vintage style, retro aesthetic, faded colors, nostalgic feel"},
		{ID: "style-film-noir", Name: "Film Noir", Description: "Classic black and white with high contrast", PromptFragment: "film noir style, black and white, high contrast, vintage cinema"},
		{ID: "style-retro-80s", Name: "80s Retro", Description: "1980s nostalgic aesthetic", PromptFragment: "80s retro style, neon colors, synthwave, vintage 1980s aesthetic"},
		{ID: "style-retro-70s", Name: "70s Retro", Description: "1970s groovy aesthetic", PromptFragment: "70s retro style, groovy colors, disco era, warm earth tones"},
		{ID: "style-art-deco", Name: "Art Deco", Description: "1920s Art Deco geometric style", PromptFragment: "Art Deco style, geometric patterns, gold accents, elegant 1920s aesthetic"},
		{ID: "style-art-nouveau", Name: "Art Nouveau", Description: "Organic flowing Art Nouveau style", PromptFragment: "Art Nouveau style, organic curves, flowing lines, nature-inspired ornaments"},
		{ID: "style-victorian", Name: "Victorian", Description: "Ornate Victorian era aesthetic", PromptFragment: "Victorian style, ornate details, sepia tones, 19th century aesthetic"},
		// Modern Artistic Movements
		{ID: "style-pop-art", Name: "Pop Art", Description: "Bold colors and graphic style inspired by Warhol", PromptFragment: "pop art style, bold colors, graphic design, Andy Warhol inspired"},
		{ID: "style-surrealism", Name: "Surrealism", Description: "Dreamlike surrealist imagery", PromptFragment: "surrealism style, dreamlike, Salvador Dali inspired, impossible imagery"},
		{ID: "style-impressionism", Name: "Impressionism", Description: "Soft brushwork capturing light", PromptFragment: "impressionism style, visible brushstrokes, light and color focus, Monet inspired"},
		{ID: "style-expressionism", Name: "Expressionism", Description: "Emotional, distorted artistic expression", PromptFragment: "expressionism style, emotional intensity, distorted forms, bold colors"},
		{ID: "style-cubism", Name: "Cubism", Description: "Geometric fragmented Picasso style", PromptFragment: "cubism style, geometric fragments, multiple perspectives, Picasso inspired"},
		{ID: "style-minimalist", Name: "Minimalist", Description: "Clean, simple aesthetic with limited elements", PromptFragment: "minimalist style, clean design, simple composition, negative space"},
		{ID: "style-abstract", Name: "Abstract", Description: "Non-representational abstract art", PromptFragment: "abstract art style, non-representational, shapes and colors, conceptual"},
		// Genre Specific
		{ID: "style-cyberpunk", Name: "Cyberpunk", Description: "Futuristic, neon-lit dystopian aesthetic", PromptFragment: "cyberpunk style, neon colors, futuristic, dystopian aesthetic"},
		{ID: "style-steampunk", Name: "Steampunk", Description: "Victorian-era mechanical aesthetic", PromptFragment: "steampunk style, Victorian mechanics, brass and copper, gear aesthetic"},
		{ID: "style-fantasy", Name: "Fantasy Art", Description: "Epic fantasy illustration style", PromptFragment: "fantasy art style, magical, epic illustration, mythical creatures"},
		{ID: "style-sci-fi", Name: "Sci-Fi", Description: "Science fiction futuristic aesthetic", PromptFragment: "sci-fi style, futuristic technology, space age, advanced civilization"},
		{ID: "style-horror", Name: "Horror", Description: "Dark, unsettling horror aesthetic", PromptFragment: "horror style, dark atmosphere, unsettling imagery, gothic horror"},
		{ID: "style-gothic", Name: "Gothic", Description: "Dark romantic gothic aesthetic", PromptFragment: "gothic style, dark romantic, ornate architecture, mysterious atmosphere"},
		{ID: "style-vaporwave", Name: "Vaporwave", Description: "Nostalgic internet aesthetic", PromptFragment: "vaporwave style, pastel colors, glitch art, 90s internet aesthetic, retro digital"},
		{ID: "style-dark-fantasy", Name: "Dark Fantasy", Description: "Grim dark fantasy world", PromptFragment: "dark fantasy style, grim atmosphere, dark medieval, ominous mood"},
		// Special Effects
		{ID: "style-double-exposure", Name: "Double Exposure", Description: "Multiple images blended together", PromptFragment: "double exposure effect, blended imagery, artistic overlay, creative composite"},
		{ID: "style-glitch-art", Name: "Glitch Art", Description: "Digital glitch aesthetic", PromptFragment: "glitch art, digital corruption, RGB split, data distortion aesthetic"},
		{ID: "style-holographic", Name: "Holographic", Description: "Iridescent holographic effect", PromptFragment: "holographic style, iridescent colors, rainbow shimmer, futuristic effect"},
		{ID: "style-neon-noir", Name: "Neon Noir", Description: "Dark noir with neon accents", PromptFragment: "neon noir style, dark atmosphere, neon accents, cyberpunk noir"},
		{ID: "style-low-poly", Name: "Low Poly", Description: "Geometric low polygon 3D style", PromptFragment: "low poly style, geometric polygons, faceted surfaces, modern 3D"},
		{ID: "style-pixel-art", Name: "Pixel Art", Description: "Retro pixel art game style", PromptFragment: "pixel art, retro game style, 8-bit aesthetic, blocky pixels"},
	},
	CategoryLocation: {
		// Urban
		{ID: "location-urban", Name: "Urban City", Description: "Modern cityscape with buildings and streets", PromptFragment: "urban city setting, modern architecture, city streets, metropolitan"},
		{ID: "location-downtown", Name: "Downtown District", Description: "Busy downtown area with skyscrapers", PromptFragment: "downtown setting, skyscrapers, busy streets, commercial district"},
		{ID: "location-alley", Name: "Back Alley", Description: "Narrow urban alleyway", PromptFragment: "back alley setting, narrow urban passage, brick walls, atmospheric"},
		{ID: "location-rooftop", Name: "Rooftop", Description: "Building rooftop with city view", PromptFragment: "rooftop setting, city skyline view, elevated perspective, urban backdrop"},
		{ID: "location-subway", Name: "Subway Station", Description: "Underground metro station", PromptFragment: "subway station, underground metro, tiled walls, urban transit"},
		{ID: "location-parking-garage", Name: "Parking Garage", Description: "Multi-level parking structure", PromptFragment: "parking garage, concrete structure, fluorescent lighting, industrial urban"},
		{ID: "location-bridge", Name: "City Bridge", Description: "Urban bridge crossing", PromptFragment: "city bridge, urban crossing, water below, architectural structure"},
		// Nature - Forests & Woods
		{ID: "location-forest", Name: "Forest", Description: "Dense woodland with trees and natural elements", PromptFragment: "forest setting, dense trees, woodland, natural greenery"},
		{ID: "location-enchanted-forest", Name: "Enchanted Forest", Description: "Magical mystical woodland", PromptFragment: "enchanted forest, magical woods, ethereal atmosphere, mystical trees"},
		{ID: "location-bamboo-forest", Name: "Bamboo Forest", Description: "Tall bamboo grove", PromptFragment: "bamboo forest, tall bamboo stalks, green filtered light, Asian aesthetic"},
		{ID: "location-autumn-forest", Name: "Autumn Forest", Description: "Fall foliage woodland", PromptFragment: "autumn forest, fall colors, orange and red leaves, seasonal beauty"},
		{ID: "location-pine-forest", Name: "Pine Forest", Description: "Coniferous pine woodland", PromptFragment: "pine forest, evergreen trees, needle floor, crisp atmosphere"},
		// Nature - Water
		{ID: "location-beach", Name: "Beach", Description: "Coastal scene with sand and ocean", PromptFragment: "beach setting, sandy shore, ocean waves, coastal scene"},
		{ID: "location-tropical-beach", Name: "Tropical Beach", Description: "Paradise tropical shoreline", PromptFragment: "tropical beach, palm trees, turquoise water, paradise setting"},
		{ID: "location-rocky-coast", Name: "Rocky Coastline", Description: "Dramatic rocky shore", PromptFragment: "rocky coastline, dramatic cliffs, crashing waves, rugged shore"},
		{ID: "location-lake", Name: "Lake", Description: "Serene lakeside setting", PromptFragment: "lake setting, calm waters, reflective surface, peaceful atmosphere"},
		{ID: "location-waterfall", Name: "Waterfall", Description: "Cascading waterfall scene", PromptFragment: "waterfall setting, cascading water, mist, natural wonder"},
		{ID: "location-river", Name: "River", Description: "Flowing river setting", PromptFragment: "river setting, flowing water, banks and stones, natural waterway"},
		{ID: "location-underwater", Name: "Underwater", Description: "Beneath the water surface", PromptFragment: "underwater setting, aquatic environment, ocean depths, marine atmosphere"},
		// Nature - Mountains & Terrain
		{ID: "location-mountains", Name: "Mountains", Description: "Majestic mountain landscape", PromptFragment: "mountain setting, majestic peaks, alpine landscape, rocky terrain"},
		{ID: "location-snowy-peaks", Name: "Snowy Peaks", Description: "Snow-covered mountain tops", PromptFragment: "snowy mountain peaks, white caps, alpine winter, pristine snow"},
		{ID: "location-desert", Name: "Desert", Description: "Sandy desert landscape", PromptFragment: "desert setting, sand dunes, arid landscape, dry climate"},
		{ID: "location-canyon", Name: "Canyon", Description: "Deep canyon with rock walls", PromptFragment: "canyon setting, deep gorge, layered rock walls, dramatic depth"},
		{ID: "location-meadow", Name: "Meadow", Description: "Open grassy field", PromptFragment: "meadow setting, open field, wildflowers, gentle grass"},
		{ID: "location-hilltop", Name: "Hilltop", Description: "Elevated hillside view", PromptFragment: "hilltop setting, elevated view, rolling hills, panoramic landscape"},
		{ID: "location-cave", Name: "Cave", Description: "Underground cavern", PromptFragment: "cave setting, underground cavern, rock formations, dark interior"},
		{ID: "location-glacier", Name: "Glacier", Description: "Icy glacial landscape", PromptFragment: "glacier setting, ice formations, blue ice, frozen landscape"},
		{ID: "location-volcano", Name: "Volcano", Description: "Volcanic landscape", PromptFragment: "volcanic setting, lava rock, dramatic terrain, primordial landscape"},
		// Indoor - Residential
		{ID: "location-living-room", Name: "Living Room", Description: "Home living space", PromptFragment: "living room setting, home interior, comfortable furnishings, domestic space"},
		{ID: "location-bedroom", Name: "Bedroom", Description: "Personal bedroom space", PromptFragment: "bedroom setting, personal space, bed and furnishings, intimate interior"},
		{ID: "location-kitchen", Name: "Kitchen", Description: "Home kitchen area", PromptFragment: "kitchen setting, cooking space, appliances and counters, domestic kitchen"},
		{ID: "location-bathroom", Name: "Bathroom", Description: "Bathroom interior", PromptFragment: "bathroom setting, tiled interior, fixtures, clean space"},
		{ID: "location-home-office", Name: "Home Office", Description: "Residential workspace", PromptFragment: "home office, residential workspace, desk setup, personal study"},
		// Indoor - Commercial
		{ID: "location-cafe", Name: "Cafe", Description: "Cozy cafe or coffee shop interior", PromptFragment: "cafe setting, coffee shop interior, cozy atmosphere, warm ambiance"},
		{ID: "location-restaurant", Name: "Restaurant", Description: "Dining establishment interior", PromptFragment: "restaurant setting, dining interior, elegant tables, fine dining atmosphere"},
		{ID: "location-bar", Name: "Bar", Description: "Bar or pub interior", PromptFragment: "bar setting, pub interior, dim lighting, bottles and glasses"},
		{ID: "location-nightclub", Name: "Nightclub", Description: "Dance club interior", PromptFragment: "nightclub setting, dance floor, colorful lights, party atmosphere"},
		{ID: "location-hotel-lobby", Name: "Hotel Lobby", Description: "Grand hotel entrance", PromptFragment: "hotel lobby, grand entrance, elegant decor, hospitality setting"},
		{ID: "location-office", Name: "Modern Office", Description: "Corporate office space", PromptFragment: "modern office, corporate setting, desks and computers, professional space"},
		{ID: "location-library", Name: "Library", Description: "Room filled with books", PromptFragment: "library setting, bookshelves, reading area, scholarly atmosphere"},
		{ID: "location-gym", Name: "Gym", Description: "Fitness center interior", PromptFragment: "gym setting, fitness equipment, workout space, athletic environment"},
		// Indoor - Special
		{ID: "location-studio", Name: "Studio Backdrop", Description: "Clean studio background for focused portraits", PromptFragment: "studio backdrop, clean background, professional setting, neutral backdrop"},
		{ID: "location-photo-studio", Name: "Photo Studio", Description: "Professional photography studio", PromptFragment: "photo studio, professional setup, lighting equipment, creative space"},
		{ID: "location-art-gallery", Name: "Art Gallery", Description: "Museum or gallery space", PromptFragment: "art gallery, museum interior, white walls, exhibition space"},
		{ID: "location-theater", Name: "Theater", Description: "Performance venue interior", PromptFragment: "theater setting, stage and seats, velvet curtains, performance venue"},
		{ID: "location-warehouse", Name: "Warehouse", Description: "Industrial warehouse space", PromptFragment: "warehouse setting, industrial space, high ceilings, raw brick and metal"},
		{ID: "location-abandoned-building", Name: "Abandoned Building", Description: "Derelict structure interior", PromptFragment: "abandoned building, derelict interior, decay and debris, atmospheric ruin"},
		// Fantasy & Sci-Fi
		{ID: "location-futuristic", Name: "Futuristic City", Description: "Sci-fi environment with advanced technology", PromptFragment: "futuristic setting, sci-fi environment, advanced technology, sleek design"},
		{ID: "location-space-station", Name: "Space Station", Description: "Orbital space habitat", PromptFragment: "space station interior, orbital habitat, futuristic corridors, zero gravity"},
		{ID: "location-alien-planet", Name: "Alien Planet", Description: "Extraterrestrial world", PromptFragment: "alien planet, extraterrestrial landscape, otherworldly terrain, sci-fi world"},
		{ID: "location-medieval-castle", Name: "Medieval Castle", Description: "Fantasy castle interior", PromptFragment: "medieval castle, stone walls, torches, fantasy architecture"},
		{ID: "location-throne-room", Name: "Throne Room", Description: "Royal throne chamber", PromptFragment: "throne room, royal chamber, grand architecture, regal setting"},
		{ID: "location-magic-realm", Name: "Magic Realm", Description: "Mystical magical world", PromptFragment: "magical realm, fantasy world, enchanted environment, mystical atmosphere"},
		{ID: "location-cyberpunk-city", Name: "Cyberpunk City", Description: "Neon-lit dystopian metropolis", PromptFragment: "cyberpunk city, neon lights, dystopian urban, high-tech low-life"},
		// Abstract & Creative
		{ID: "location-abstract", Name: "Abstract", Description: "Non-representational, artistic background", PromptFragment: "abstract background, artistic setting, non-representational, creative backdrop"},
		{ID: "location-void", Name: "Void Space", Description: "Empty infinite space", PromptFragment: "void background, infinite space, empty darkness, minimalist setting"},
		{ID: "location-gradient", Name: "Gradient Background", Description: "Smooth color gradient backdrop", PromptFragment: "gradient background, smooth color transition, professional backdrop"},
		{ID: "location-bokeh", Name: "Bokeh Background", Description: "Blurred light circles", PromptFragment: "bokeh background, blurred lights, dreamy circles, out of focus backdrop"},
		{ID: "location-dreamscape", Name: "Dreamscape", Description: "Surreal dream environment", PromptFragment: "dreamscape setting, surreal environment, dream world, ethereal atmosphere"},
	},
	CategoryLighting: {
		// Natural Lighting
		{ID: "lighting-golden-hour", Name: "Golden Hour", Description: "Warm, soft light during sunrise or sunset with golden tones", PromptFragment: "golden hour lighting, warm sunlight, soft shadows"},
		{ID: "lighting-natural", Name: "Natural Light", Description: "Soft, diffused natural daylight", PromptFragment: "natural daylight, soft diffused light, ambient lighting"},
		{ID: "lighting-overcast", Name: "Overcast Day", Description: "Soft, even lighting from cloudy sky", PromptFragment: "overcast lighting, soft diffused clouds, even illumination, no harsh shadows"},
		{ID: "lighting-blue-hour", Name: "Blue Hour", Description: "Cool twilight tones just before sunrise or after sunset", PromptFragment: "blue hour lighting, twilight ambiance, cool blue tones, magical atmosphere"},
		{ID: "lighting-harsh-sun", Name: "Harsh Sunlight", Description: "Direct midday sun with strong shadows", PromptFragment: "harsh sunlight, direct sun, strong shadows, high contrast daylight"},
		{ID: "lighting-dappled", Name: "Dappled Light", Description: "Light filtering through leaves creating patterns", PromptFragment: "dappled sunlight, light filtering through leaves, natural patterns, forest light"},
		// Studio Lighting
		{ID: "lighting-studio", Name: "Studio Lighting", Description: "Professional studio setup with controlled lighting", PromptFragment: "professional studio lighting, softbox lighting, even illumination"},
		{ID: "lighting-softbox", Name: "Softbox Setup", Description: "Soft, flattering light from diffused source", PromptFragment: "softbox lighting, diffused light source, flattering illumination, minimal shadows"},
		{ID: "lighting-ring-light", Name: "Ring Light", Description: "Even, flattering light popular for portraits", PromptFragment: "ring light, even facial illumination, catchlight in eyes, beauty lighting"},
		{ID: "lighting-rembrandt", Name: "Rembrandt Lighting", Description: "Classic portrait lighting with triangle under eye", PromptFragment: "Rembrandt lighting, triangle shadow under eye, classic portrait style, artistic illumination"},
		{ID: "lighting-butterfly", Name: "Butterfly Lighting", Description: "Glamour lighting from above creating butterfly shadow", PromptFragment: "butterfly lighting, paramount lighting, shadow under nose, glamour portrait style"},
		{ID: "lighting-split", Name: "Split Lighting", Description: "Half face lit, half in shadow for dramatic effect", PromptFragment: "split lighting, half face illuminated, half in shadow, dramatic contrast"},
		// Dramatic & Artistic
		{ID: "lighting-dramatic", Name: "Dramatic Shadows", Description: "High contrast lighting with deep shadows", PromptFragment: "dramatic lighting, chiaroscuro, strong shadows, high contrast"},
		{ID: "lighting-cinematic", Name: "Cinematic", Description: "Film-style lighting with dramatic atmosphere", PromptFragment: "cinematic lighting, film noir style, moody atmosphere"},
		{ID: "lighting-backlit", Name: "Backlit", Description: "Light source behind the subject creating silhouette effect", PromptFragment: "backlit, rim lighting, silhouette effect, glowing edges"},
		{ID: "lighting-rim", Name: "Rim Light", Description: "Highlights edges of subject from behind", PromptFragment: "rim lighting, edge highlighting, subject separation, halo effect"},
		{ID: "lighting-low-key", Name: "Low Key", Description: "Dark, moody lighting with minimal illumination", PromptFragment: "low key lighting, dark atmosphere, minimal illumination, mysterious shadows"},
		{ID: "lighting-high-key", Name: "High Key", Description: "Bright, even lighting with minimal shadows", PromptFragment: "high key lighting, bright illumination, minimal shadows, clean look"},
		{ID: "lighting-chiaroscuro", Name: "Chiaroscuro", Description: "Strong contrast between light and dark areas", PromptFragment: "chiaroscuro lighting, dramatic light and shadow, Renaissance style, artistic contrast"},
		// Night & Artificial
		{ID: "lighting-moonlight", Name: "Moonlight", Description: "Cool, ethereal moonlit atmosphere", PromptFragment: "moonlight, cool blue tones, nighttime ambiance, ethereal glow"},
		{ID: "lighting-neon", Name: "Neon Glow", Description: "Vibrant neon lights with colorful ambient glow", PromptFragment: "neon lighting, vibrant colored lights, cyberpunk glow"},
		{ID: "lighting-candlelight", Name: "Candlelight", Description: "Warm, flickering intimate lighting", PromptFragment: "candlelight, warm flickering glow, intimate atmosphere, romantic lighting"},
		{ID: "lighting-firelight", Name: "Firelight", Description: "Warm orange glow from fire source", PromptFragment: "firelight, warm orange glow, dancing shadows, campfire atmosphere"},
		{ID: "lighting-streetlamp", Name: "Street Lamp", Description: "Urban night lighting from street lamps", PromptFragment: "street lamp lighting, urban night, pool of light, city ambiance"},
		{ID: "lighting-neon-sign", Name: "Neon Sign", Description: "Colorful glow from neon signage", PromptFragment: "neon sign lighting, colored glow, urban night atmosphere, vibrant illumination"},
		{ID: "lighting-led-strip", Name: "LED Strip", Description: "Modern colored LED accent lighting", PromptFragment: "LED strip lighting, colored accent lights, modern ambiance, gradient illumination"},
		// Special Effects
		{ID: "lighting-foggy", Name: "Foggy Atmosphere", Description: "Diffused light through fog or mist", PromptFragment: "foggy atmosphere, diffused misty light, atmospheric haze, soft ethereal glow"},
		{ID: "lighting-volumetric", Name: "Volumetric Light", Description: "Visible light rays through atmosphere", PromptFragment: "volumetric lighting, god rays, visible light beams, atmospheric rays"},
		{ID: "lighting-rainbow", Name: "Rainbow Light", Description: "Prismatic colorful light spectrum", PromptFragment: "rainbow lighting, prismatic colors, light spectrum, iridescent glow"},
		{ID: "lighting-underwater", Name: "Underwater Light", Description: "Filtered blue-green aquatic lighting", PromptFragment: "underwater lighting, caustic patterns, blue-green tones, aquatic ambiance"},
	},
	CategoryCamera: {
		// Standard Shots
		{ID: "camera-closeup", Name: "Close-up", Description: "Tight framing focusing on details", PromptFragment: "close-up shot, detailed view, intimate framing"},
		{ID: "camera-extreme-closeup", Name: "Extreme Close-up", Description: "Very tight framing on specific feature", PromptFragment: "extreme close-up, tight framing on details, dramatic proximity"},
		{ID: "camera-medium-shot", Name: "Medium Shot", Description: "Waist-up framing showing body language", PromptFragment: "medium shot, waist-up framing, conversational distance"},
		{ID: "camera-medium-closeup", Name: "Medium Close-up", Description: "Head and shoulders framing", PromptFragment: "medium close-up, head and shoulders, interview style framing"},
		{ID: "camera-wide", Name: "Wide Shot", Description: "Full scene view showing environment and context", PromptFragment: "wide shot, full scene view, environmental context"},
		{ID: "camera-extreme-wide", Name: "Extreme Wide Shot", Description: "Vast establishing shot showing full environment", PromptFragment: "extreme wide shot, establishing shot, vast environment, epic scale"},
		{ID: "camera-full-body", Name: "Full Body Shot", Description: "Complete figure from head to toe", PromptFragment: "full body shot, head to toe framing, complete figure visible"},
		// Angles
		{ID: "camera-low-angle", Name: "Low Angle", Description: "Shot from below looking up, making subject appear powerful", PromptFragment: "low angle shot, looking up, heroic perspective"},
		{ID: "camera-high-angle", Name: "High Angle", Description: "Shot from above looking down", PromptFragment: "high angle shot, looking down, elevated perspective"},
		{ID: "camera-birds-eye", Name: "Bird's Eye", Description: "Overhead view looking directly down", PromptFragment: "bird's eye view, overhead shot, top-down perspective"},
		{ID: "camera-worms-eye", Name: "Worm's Eye View", Description: "Extreme low angle from ground level", PromptFragment: "worm's eye view, ground level, extreme low angle, dramatic upward perspective"},
		{ID: "camera-dutch", Name: "Dutch Angle", Description: "Tilted camera creating dynamic, unsettling feel", PromptFragment: "dutch angle, tilted frame, dynamic composition"},
		{ID: "camera-eye-level", Name: "Eye Level", Description: "Neutral angle at subject's eye level", PromptFragment: "eye level shot, neutral perspective, natural viewpoint"},
		// Portrait Specific
		{ID: "camera-portrait", Name: "Portrait", Description: "Classic portrait framing with shallow depth of field", PromptFragment: "portrait shot, shallow depth of field, bokeh background"},
		{ID: "camera-headshot", Name: "Headshot", Description: "Professional head and shoulders portrait", PromptFragment: "professional headshot, head and shoulders, clean composition"},
		{ID: "camera-three-quarter", Name: "Three-Quarter View", Description: "Face turned slightly away from camera", PromptFragment: "three-quarter view, face slightly turned, classic portrait angle"},
		{ID: "camera-profile", Name: "Profile Shot", Description: "Side view of subject", PromptFragment: "profile shot, side view, silhouette perspective"},
		// Creative & Technical
		{ID: "camera-macro", Name: "Macro", Description: "Extreme close-up revealing tiny details", PromptFragment: "macro photography, extreme close-up, fine details visible"},
		{ID: "camera-over-shoulder", Name: "Over-the-shoulder", Description: "Shot from behind subject's shoulder", PromptFragment: "over-the-shoulder shot, POV framing, conversational angle"},
		{ID: "camera-pov", Name: "Point of View", Description: "First-person perspective as if through subject's eyes", PromptFragment: "POV shot, first-person perspective, subjective view"},
		{ID: "camera-tilt-shift", Name: "Tilt-Shift", Description: "Miniature effect with selective focus", PromptFragment: "tilt-shift effect, miniature look, selective focus, toy-like appearance"},
		{ID: "camera-fisheye", Name: "Fisheye", Description: "Ultra-wide angle with curved distortion", PromptFragment: "fisheye lens, ultra-wide angle, curved distortion, extreme perspective"},
		{ID: "camera-telephoto", Name: "Telephoto Compression", Description: "Compressed perspective from long lens", PromptFragment: "telephoto compression, flattened perspective, background proximity"},
		// Composition Rules
		{ID: "camera-rule-thirds", Name: "Rule of Thirds", Description: "Subject placed at intersection points", PromptFragment: "rule of thirds composition, off-center subject, balanced framing"},
		{ID: "camera-centered", Name: "Centered Composition", Description: "Subject placed directly in center", PromptFragment: "centered composition, symmetrical framing, subject in middle"},
		{ID: "camera-symmetrical", Name: "Symmetrical", Description: "Perfect symmetry in composition", PromptFragment: "symmetrical composition, mirror balance, perfect symmetry"},
		{ID: "camera-leading-lines", Name: "Leading Lines", Description: "Lines guiding eye to subject", PromptFragment: "leading lines composition, visual guides to subject, depth perspective"},
		{ID: "camera-framing", Name: "Natural Frame", Description: "Subject framed by environmental elements", PromptFragment: "natural framing, subject framed by environment, frame within frame"},
		{ID: "camera-negative-space", Name: "Negative Space", Description: "Lots of empty space around subject", PromptFragment: "negative space composition, minimalist framing, isolated subject"},
		// Depth & Focus
		{ID: "camera-shallow-dof", Name: "Shallow Depth of Field", Description: "Blurred background with sharp subject", PromptFragment: "shallow depth of field, bokeh background, sharp subject focus, blurred surroundings"},
		{ID: "camera-deep-focus", Name: "Deep Focus", Description: "Everything in sharp focus", PromptFragment: "deep focus, everything sharp, full scene clarity, no blur"},
		{ID: "camera-split-diopter", Name: "Split Diopter", Description: "Both foreground and background in focus", PromptFragment: "split diopter effect, dual focus planes, foreground and background sharp"},
	},
	CategoryPose: {
		// Standing
		{ID: "pose-standing", Name: "Standing", Description: "Upright standing position", PromptFragment: "standing pose, upright position, confident stance"},
		{ID: "pose-standing-relaxed", Name: "Relaxed Standing", Description: "Casual relaxed standing", PromptFragment: "relaxed standing pose, casual stance, weight on one leg"},
		{ID: "pose-standing-confident", Name: "Power Pose", Description: "Confident assertive stance", PromptFragment: "power pose, confident stance, hands on hips, assertive posture"},
		{ID: "pose-standing-crossed-arms", Name: "Arms Crossed", Description: "Standing with folded arms", PromptFragment: "arms crossed pose, standing with folded arms, confident posture"},
		{ID: "pose-hands-in-pockets", Name: "Hands in Pockets", Description: "Casual hands in pockets", PromptFragment: "hands in pockets, casual stance, relaxed posture"},
		{ID: "pose-contrapposto", Name: "Contrapposto", Description: "Classic weight shift pose", PromptFragment: "contrapposto pose, weight shifted, classical stance, elegant posture"},
		// Sitting
		{ID: "pose-sitting", Name: "Sitting", Description: "Seated position on chair or surface", PromptFragment: "sitting pose, seated position, relaxed posture"},
		{ID: "pose-sitting-crossed-legs", Name: "Cross-Legged", Description: "Sitting with legs crossed", PromptFragment: "cross-legged sitting, elegant seated pose, legs crossed"},
		{ID: "pose-sitting-floor", Name: "Floor Sitting", Description: "Sitting on the ground", PromptFragment: "sitting on floor, ground-level pose, relaxed seating"},
		{ID: "pose-sitting-edge", Name: "Perched", Description: "Sitting on edge of surface", PromptFragment: "perched pose, sitting on edge, alert posture"},
		{ID: "pose-lounging", Name: "Lounging", Description: "Relaxed lounging position", PromptFragment: "lounging pose, relaxed recline, comfortable position"},
		{ID: "pose-meditation", Name: "Meditation", Description: "Cross-legged meditation pose", PromptFragment: "meditation pose, lotus position, zen posture, peaceful sitting"},
		// Leaning
		{ID: "pose-leaning", Name: "Leaning", Description: "Leaning against wall or surface", PromptFragment: "leaning pose, casual stance, resting against surface"},
		{ID: "pose-leaning-wall", Name: "Wall Lean", Description: "Leaning against a wall", PromptFragment: "leaning against wall, casual wall pose, relaxed stance"},
		{ID: "pose-leaning-forward", Name: "Forward Lean", Description: "Leaning forward with interest", PromptFragment: "forward lean pose, engaged posture, attentive stance"},
		{ID: "pose-leaning-back", Name: "Backward Lean", Description: "Leaning back casually", PromptFragment: "leaning back, relaxed recline, casual backward lean"},
		// Lying
		{ID: "pose-lying", Name: "Lying Down", Description: "Horizontal resting position", PromptFragment: "lying down pose, reclined position, horizontal posture"},
		{ID: "pose-lying-side", Name: "Side Lying", Description: "Lying on one side", PromptFragment: "side lying pose, resting on side, comfortable recline"},
		{ID: "pose-lying-back", Name: "Lying on Back", Description: "Supine position facing up", PromptFragment: "lying on back, supine position, face up recline"},
		{ID: "pose-lying-stomach", Name: "Lying on Stomach", Description: "Prone position facing down", PromptFragment: "lying on stomach, prone position, face down pose"},
		// Dynamic Movement
		{ID: "pose-walking", Name: "Walking", Description: "Mid-stride walking motion", PromptFragment: "walking pose, mid-stride, natural movement"},
		{ID: "pose-running", Name: "Running", Description: "Dynamic running motion", PromptFragment: "running pose, dynamic motion, athletic movement"},
		{ID: "pose-jumping", Name: "Jumping", Description: "Mid-air jumping action", PromptFragment: "jumping pose, mid-air, dynamic leap, energetic"},
		{ID: "pose-crouching", Name: "Crouching", Description: "Low crouching or squatting position", PromptFragment: "crouching pose, low stance, squatting position"},
		{ID: "pose-kneeling", Name: "Kneeling", Description: "On one or both knees", PromptFragment: "kneeling pose, on knees, lowered stance"},
		{ID: "pose-turning", Name: "Mid-Turn", Description: "Caught mid-turn movement", PromptFragment: "mid-turn pose, turning motion, dynamic twist"},
		{ID: "pose-stepping", Name: "Stepping Forward", Description: "Taking a step forward", PromptFragment: "stepping pose, forward movement, purposeful stride"},
		// Action Poses
		{ID: "pose-reaching", Name: "Reaching", Description: "Reaching for something", PromptFragment: "reaching pose, extended arm, grasping motion"},
		{ID: "pose-pointing", Name: "Pointing", Description: "Pointing gesture", PromptFragment: "pointing pose, directional gesture, indicating motion"},
		{ID: "pose-waving", Name: "Waving", Description: "Hand wave gesture", PromptFragment: "waving pose, greeting gesture, raised hand wave"},
		{ID: "pose-stretching", Name: "Stretching", Description: "Full body stretch", PromptFragment: "stretching pose, body stretch, extended limbs, flexible position"},
		{ID: "pose-dancing", Name: "Dance Pose", Description: "Elegant dance position", PromptFragment: "dance pose, elegant position, graceful stance"},
		{ID: "pose-action-hero", Name: "Action Hero", Description: "Dynamic heroic stance", PromptFragment: "action hero pose, dynamic stance, powerful position"},
		{ID: "pose-defensive", Name: "Defensive Stance", Description: "Guarded protective position", PromptFragment: "defensive pose, guarded stance, protective position"},
		// Professional/Casual
		{ID: "pose-arms-behind-back", Name: "Arms Behind Back", Description: "Hands clasped behind", PromptFragment: "arms behind back, hands clasped, formal stance"},
		{ID: "pose-chin-rest", Name: "Chin Rest", Description: "Hand resting under chin", PromptFragment: "chin rest pose, hand under chin, thoughtful position"},
		{ID: "pose-head-tilt", Name: "Head Tilt", Description: "Slight head tilt", PromptFragment: "head tilt pose, angled head, curious expression"},
		{ID: "pose-looking-away", Name: "Looking Away", Description: "Gaze directed off-camera", PromptFragment: "looking away pose, off-camera gaze, contemplative direction"},
		{ID: "pose-over-shoulder", Name: "Over Shoulder Look", Description: "Looking back over shoulder", PromptFragment: "over shoulder look, backward glance, turned pose"},
	},
	CategoryAction: {
		// Emotions/Expressions as Actions
		{ID: "action-smiling", Name: "Smiling", Description: "Happy, smiling expression", PromptFragment: "smiling, happy expression, warm smile"},
		{ID: "action-laughing", Name: "Laughing", Description: "Genuine laughter expression", PromptFragment: "laughing, genuine laughter, joyful expression"},
		{ID: "action-thinking", Name: "Thinking", Description: "Contemplative, thoughtful expression", PromptFragment: "thinking, contemplative expression, pensive mood"},
		{ID: "action-talking", Name: "Talking", Description: "Engaged in conversation", PromptFragment: "talking, mid-conversation, expressive gestures"},
		{ID: "action-whispering", Name: "Whispering", Description: "Speaking softly, secretive", PromptFragment: "whispering, speaking softly, secretive gesture"},
		{ID: "action-shouting", Name: "Shouting", Description: "Calling out loudly", PromptFragment: "shouting, calling out, raised voice, energetic"},
		// Work & Productivity
		{ID: "action-working", Name: "Working", Description: "Engaged in work or task", PromptFragment: "working, focused on task, productive activity"},
		{ID: "action-typing", Name: "Typing", Description: "Typing on keyboard or device", PromptFragment: "typing, keyboard work, focused on screen"},
		{ID: "action-writing", Name: "Writing", Description: "Writing by hand", PromptFragment: "writing, pen in hand, focused on paper"},
		{ID: "action-reading", Name: "Reading", Description: "Reading a book or document", PromptFragment: "reading, holding book, focused attention"},
		{ID: "action-studying", Name: "Studying", Description: "Intense focused learning", PromptFragment: "studying, concentrated learning, surrounded by materials"},
		{ID: "action-presenting", Name: "Presenting", Description: "Giving a presentation", PromptFragment: "presenting, public speaking, confident gesture"},
		{ID: "action-meeting", Name: "In a Meeting", Description: "Participating in discussion", PromptFragment: "in meeting, business discussion, collaborative setting"},
		// Physical Activities
		{ID: "action-dancing", Name: "Dancing", Description: "Dynamic dancing movement", PromptFragment: "dancing, dynamic movement, rhythmic motion"},
		{ID: "action-exercising", Name: "Exercising", Description: "Physical workout activity", PromptFragment: "exercising, workout activity, physical exertion"},
		{ID: "action-yoga", Name: "Yoga", Description: "Yoga practice pose", PromptFragment: "yoga pose, mindful stretching, zen practice"},
		{ID: "action-running", Name: "Running", Description: "Jogging or sprinting", PromptFragment: "running, athletic motion, active movement"},
		{ID: "action-swimming", Name: "Swimming", Description: "Swimming motion", PromptFragment: "swimming, in water motion, athletic stroke"},
		{ID: "action-climbing", Name: "Climbing", Description: "Climbing activity", PromptFragment: "climbing, ascending motion, gripping holds"},
		{ID: "action-jumping", Name: "Jumping", Description: "Mid-jump action", PromptFragment: "jumping, leaping motion, airborne action"},
		// Leisure Activities
		{ID: "action-playing-music", Name: "Playing Music", Description: "Playing an instrument", PromptFragment: "playing music, musical instrument, performance"},
		{ID: "action-singing", Name: "Singing", Description: "Vocal performance", PromptFragment: "singing, vocal performance, musical expression"},
		{ID: "action-painting", Name: "Painting", Description: "Creating art", PromptFragment: "painting, creating art, brush in hand, artistic activity"},
		{ID: "action-cooking", Name: "Cooking", Description: "Preparing food", PromptFragment: "cooking, preparing food, culinary activity"},
		{ID: "action-gaming", Name: "Gaming", Description: "Playing video games", PromptFragment: "gaming, playing video games, controller in hand"},
		{ID: "action-gardening", Name: "Gardening", Description: "Tending to plants", PromptFragment: "gardening, tending plants, outdoor activity"},
		{ID: "action-photography", Name: "Taking Photos", Description: "Using a camera", PromptFragment: "taking photos, camera in hand, capturing moment"},
		// Social Actions
		{ID: "action-hugging", Name: "Hugging", Description: "Embracing someone", PromptFragment: "hugging, embracing, affectionate gesture"},
		{ID: "action-handshake", Name: "Handshake", Description: "Formal greeting", PromptFragment: "handshake, formal greeting, business gesture"},
		{ID: "action-waving", Name: "Waving", Description: "Greeting wave", PromptFragment: "waving, greeting gesture, friendly wave"},
		{ID: "action-cheering", Name: "Cheering", Description: "Celebratory cheering", PromptFragment: "cheering, celebrating, excited gesture, arms raised"},
		{ID: "action-applauding", Name: "Applauding", Description: "Clapping hands", PromptFragment: "applauding, clapping, appreciation gesture"},
		{ID: "action-toasting", Name: "Toasting", Description: "Raising glass for toast", PromptFragment: "toasting, raising glass, celebratory gesture"},
		// Daily Activities
		{ID: "action-eating", Name: "Eating", Description: "Enjoying food", PromptFragment: "eating, enjoying food, dining activity"},
		{ID: "action-drinking", Name: "Drinking", Description: "Having a beverage", PromptFragment: "drinking, beverage in hand, refreshment"},
		{ID: "action-coffee", Name: "Drinking Coffee", Description: "Enjoying coffee", PromptFragment: "drinking coffee, holding coffee cup, morning routine"},
		{ID: "action-sleeping", Name: "Sleeping", Description: "Asleep or resting", PromptFragment: "sleeping, peaceful rest, eyes closed"},
		{ID: "action-stretching", Name: "Stretching", Description: "Morning stretch or workout stretch", PromptFragment: "stretching, extending limbs, flexible movement"},
		{ID: "action-phone-call", Name: "Phone Call", Description: "On the phone", PromptFragment: "on phone, phone call, conversation on mobile"},
		{ID: "action-texting", Name: "Texting", Description: "Using smartphone", PromptFragment: "texting, using phone, smartphone activity"},
		{ID: "action-walking", Name: "Walking", Description: "Casual walking", PromptFragment: "walking, casual stroll, moving forward"},
		// Contemplative Actions
		{ID: "action-meditating", Name: "Meditating", Description: "Mindfulness practice", PromptFragment: "meditating, mindfulness, peaceful concentration"},
		{ID: "action-daydreaming", Name: "Daydreaming", Description: "Lost in thought", PromptFragment: "daydreaming, lost in thought, distant gaze"},
		{ID: "action-stargazing", Name: "Stargazing", Description: "Looking at the sky", PromptFragment: "stargazing, looking up at sky, contemplative gaze"},
		{ID: "action-watching", Name: "Watching", Description: "Observing something", PromptFragment: "watching, observing intently, focused attention"},
	},
	CategoryClothing: {
		// Casual
		{ID: "clothing-casual", Name: "Casual", Description: "Everyday casual wear", PromptFragment: "casual clothing, everyday wear, relaxed outfit"},
		{ID: "clothing-tshirt-jeans", Name: "T-Shirt & Jeans", Description: "Classic casual combination", PromptFragment: "t-shirt and jeans, classic casual look, comfortable clothing"},
		{ID: "clothing-hoodie", Name: "Hoodie", Description: "Comfortable hooded sweatshirt", PromptFragment: "wearing hoodie, comfortable sweatshirt, casual streetwear"},
		{ID: "clothing-sweater", Name: "Sweater", Description: "Cozy knit sweater", PromptFragment: "wearing sweater, cozy knitwear, comfortable top"},
		{ID: "clothing-cardigan", Name: "Cardigan", Description: "Button-up knit cardigan", PromptFragment: "wearing cardigan, button-up knit, layered casual"},
		{ID: "clothing-polo", Name: "Polo Shirt", Description: "Smart casual polo", PromptFragment: "polo shirt, smart casual, collared casual top"},
		// Formal & Business
		{ID: "clothing-formal", Name: "Formal", Description: "Business or formal attire", PromptFragment: "formal attire, business wear, professional clothing"},
		{ID: "clothing-suit", Name: "Business Suit", Description: "Professional suit and tie", PromptFragment: "business suit, professional attire, formal suiting"},
		{ID: "clothing-blazer", Name: "Blazer", Description: "Smart blazer jacket", PromptFragment: "wearing blazer, smart jacket, semi-formal wear"},
		{ID: "clothing-dress-shirt", Name: "Dress Shirt", Description: "Formal button-down shirt", PromptFragment: "dress shirt, button-down formal, professional top"},
		{ID: "clothing-tuxedo", Name: "Tuxedo", Description: "Black tie formal wear", PromptFragment: "tuxedo, black tie attire, formal evening wear"},
		{ID: "clothing-business-casual", Name: "Business Casual", Description: "Smart but relaxed office wear", PromptFragment: "business casual, smart office wear, professional relaxed"},
		// Dresses & Skirts
		{ID: "clothing-dress", Name: "Dress", Description: "Casual or formal dress", PromptFragment: "wearing dress, one-piece outfit, feminine attire"},
		{ID: "clothing-evening-gown", Name: "Evening Gown", Description: "Formal evening dress", PromptFragment: "evening gown, formal long dress, elegant attire"},
		{ID: "clothing-cocktail-dress", Name: "Cocktail Dress", Description: "Semi-formal short dress", PromptFragment: "cocktail dress, semi-formal dress, party attire"},
		{ID: "clothing-sundress", Name: "Sundress", Description: "Light summer dress", PromptFragment: "sundress, light summer dress, casual feminine"},
		{ID: "clothing-maxi-dress", Name: "Maxi Dress", Description: "Long flowing dress", PromptFragment: "maxi dress, long flowing dress, bohemian style"},
		{ID: "clothing-skirt", Name: "Skirt", Description: "Various skirt styles", PromptFragment: "wearing skirt, feminine bottom wear, versatile style"},
		// Athletic & Active
		{ID: "clothing-athletic", Name: "Athletic", Description: "Sports or workout clothing", PromptFragment: "athletic wear, sports clothing, workout outfit"},
		{ID: "clothing-yoga", Name: "Yoga Wear", Description: "Flexible yoga attire", PromptFragment: "yoga wear, stretchy athletic, flexible clothing"},
		{ID: "clothing-running-gear", Name: "Running Gear", Description: "Running attire", PromptFragment: "running gear, athletic shorts and top, sports attire"},
		{ID: "clothing-swimwear", Name: "Swimwear", Description: "Swimming attire", PromptFragment: "swimwear, beach attire, swimming outfit"},
		{ID: "clothing-sports-uniform", Name: "Sports Uniform", Description: "Team sports attire", PromptFragment: "sports uniform, team jersey, athletic competition wear"},
		// Streetwear & Urban
		{ID: "clothing-streetwear", Name: "Streetwear", Description: "Urban street fashion style", PromptFragment: "streetwear, urban fashion, trendy street style"},
		{ID: "clothing-hypebeast", Name: "Hypebeast", Description: "High-end streetwear", PromptFragment: "hypebeast style, designer streetwear, exclusive urban fashion"},
		{ID: "clothing-urban-layers", Name: "Urban Layers", Description: "Layered street style", PromptFragment: "urban layered look, multiple layers, street fashion"},
		{ID: "clothing-denim-jacket", Name: "Denim Jacket", Description: "Classic jean jacket", PromptFragment: "denim jacket, jean jacket, classic casual outerwear"},
		{ID: "clothing-bomber-jacket", Name: "Bomber Jacket", Description: "Classic bomber style", PromptFragment: "bomber jacket, classic outerwear, casual cool"},
		// Elegant & Luxury
		{ID: "clothing-elegant", Name: "Elegant", Description: "Sophisticated, upscale fashion", PromptFragment: "elegant attire, sophisticated fashion, upscale clothing"},
		{ID: "clothing-haute-couture", Name: "Haute Couture", Description: "High fashion designer wear", PromptFragment: "haute couture, high fashion, designer clothing"},
		{ID: "clothing-designer", Name: "Designer Wear", Description: "Luxury brand clothing", PromptFragment: "designer clothing, luxury fashion, premium attire"},
		{ID: "clothing-silk", Name: "Silk Attire", Description: "Luxurious silk garments", PromptFragment: "silk clothing, luxurious fabric, elegant material"},
		// Vintage & Retro
		{ID: "clothing-vintage", Name: "Vintage", Description: "Retro or period-appropriate clothing", PromptFragment: "vintage clothing, retro fashion, period attire"},
		{ID: "clothing-retro-50s", Name: "1950s Style", Description: "Classic 50s fashion", PromptFragment: "1950s fashion, retro fifties style, classic vintage"},
		{ID: "clothing-retro-70s", Name: "1970s Style", Description: "Groovy 70s fashion", PromptFragment: "1970s fashion, seventies style, disco era clothing"},
		{ID: "clothing-retro-80s", Name: "1980s Style", Description: "Bold 80s fashion", PromptFragment: "1980s fashion, eighties style, bold retro"},
		{ID: "clothing-retro-90s", Name: "1990s Style", Description: "90s grunge and minimalist", PromptFragment: "1990s fashion, nineties style, grunge minimalist"},
		// Cultural & Traditional
		{ID: "clothing-traditional", Name: "Traditional Wear", Description: "Cultural traditional clothing", PromptFragment: "traditional clothing, cultural attire, heritage wear"},
		{ID: "clothing-kimono", Name: "Kimono", Description: "Traditional Japanese garment", PromptFragment: "wearing kimono, Japanese traditional, elegant robe"},
		{ID: "clothing-hanbok", Name: "Hanbok", Description: "Traditional Korean attire", PromptFragment: "wearing hanbok, Korean traditional, colorful formal"},
		{ID: "clothing-saree", Name: "Saree", Description: "Traditional Indian garment", PromptFragment: "wearing saree, Indian traditional, elegant draping"},
		{ID: "clothing-cheongsam", Name: "Cheongsam", Description: "Traditional Chinese dress", PromptFragment: "wearing cheongsam, Chinese traditional dress, elegant fitted"},
		// Special & Themed
		{ID: "clothing-uniform", Name: "Uniform", Description: "Professional or school uniform", PromptFragment: "wearing uniform, professional attire, standardized clothing"},
		{ID: "clothing-military", Name: "Military Style", Description: "Military-inspired fashion", PromptFragment: "military style clothing, tactical fashion, army aesthetic"},
		{ID: "clothing-punk", Name: "Punk", Description: "Punk rock fashion", PromptFragment: "punk fashion, rebellious style, leather and studs"},
		{ID: "clothing-goth", Name: "Gothic", Description: "Gothic fashion style", PromptFragment: "gothic fashion, dark clothing, dramatic black attire"},
		{ID: "clothing-bohemian", Name: "Bohemian", Description: "Boho chic style", PromptFragment: "bohemian style, boho chic, free-spirited fashion"},
		{ID: "clothing-minimalist", Name: "Minimalist", Description: "Clean simple fashion", PromptFragment: "minimalist fashion, clean simple lines, neutral colors"},
		// Outerwear
		{ID: "clothing-winter-coat", Name: "Winter Coat", Description: "Heavy winter outerwear", PromptFragment: "winter coat, heavy outerwear, cold weather clothing"},
		{ID: "clothing-leather-jacket", Name: "Leather Jacket", Description: "Classic leather jacket", PromptFragment: "leather jacket, classic outerwear, edgy style"},
		{ID: "clothing-trench-coat", Name: "Trench Coat", Description: "Classic trench style", PromptFragment: "trench coat, classic outerwear, sophisticated style"},
		{ID: "clothing-raincoat", Name: "Raincoat", Description: "Weather protection", PromptFragment: "raincoat, waterproof outerwear, weather protection"},
		// Fantasy & Costume
		{ID: "clothing-fantasy-armor", Name: "Fantasy Armor", Description: "Medieval or fantasy armor", PromptFragment: "fantasy armor, medieval plate, warrior attire"},
		{ID: "clothing-royal-robes", Name: "Royal Robes", Description: "Regal royal garments", PromptFragment: "royal robes, regal attire, majestic clothing"},
		{ID: "clothing-futuristic", Name: "Futuristic", Description: "Sci-fi inspired fashion", PromptFragment: "futuristic clothing, sci-fi fashion, advanced textiles"},
		{ID: "clothing-cyberpunk", Name: "Cyberpunk Fashion", Description: "Tech-enhanced urban wear", PromptFragment: "cyberpunk fashion, tech wear, neon accented clothing"},
	},
	CategoryExpression: {
		// Positive Emotions
		{ID: "expression-neutral", Name: "Neutral", Description: "Calm, neutral facial expression", PromptFragment: "neutral expression, calm face, relaxed features"},
		{ID: "expression-happy", Name: "Happy", Description: "Joyful, pleased expression", PromptFragment: "happy expression, joyful face, pleased look"},
		{ID: "expression-joyful", Name: "Joyful", Description: "Radiating with joy", PromptFragment: "joyful expression, beaming happiness, radiant smile"},
		{ID: "expression-content", Name: "Content", Description: "Peaceful satisfaction", PromptFragment: "content expression, peaceful satisfaction, gentle smile"},
		{ID: "expression-excited", Name: "Excited", Description: "Enthusiastic and thrilled", PromptFragment: "excited expression, enthusiastic face, thrilled look"},
		{ID: "expression-amused", Name: "Amused", Description: "Entertained smirk", PromptFragment: "amused expression, entertained smirk, playful look"},
		{ID: "expression-proud", Name: "Proud", Description: "Self-satisfied pride", PromptFragment: "proud expression, self-satisfied look, accomplished face"},
		{ID: "expression-loving", Name: "Loving", Description: "Warm affectionate gaze", PromptFragment: "loving expression, warm affectionate gaze, tender look"},
		{ID: "expression-hopeful", Name: "Hopeful", Description: "Optimistic and expecting", PromptFragment: "hopeful expression, optimistic look, expectant face"},
		// Confident & Serious
		{ID: "expression-confident", Name: "Confident", Description: "Self-assured, bold expression", PromptFragment: "confident expression, self-assured look, bold demeanor"},
		{ID: "expression-determined", Name: "Determined", Description: "Resolute and focused", PromptFragment: "determined expression, resolute face, focused determination"},
		{ID: "expression-serious", Name: "Serious", Description: "Focused, serious demeanor", PromptFragment: "serious expression, focused look, determined face"},
		{ID: "expression-stern", Name: "Stern", Description: "Strict serious look", PromptFragment: "stern expression, strict look, unyielding face"},
		{ID: "expression-intense", Name: "Intense", Description: "Deep concentrated gaze", PromptFragment: "intense expression, concentrated gaze, penetrating look"},
		{ID: "expression-stoic", Name: "Stoic", Description: "Emotionless and controlled", PromptFragment: "stoic expression, emotionless face, controlled demeanor"},
		// Thoughtful & Contemplative
		{ID: "expression-thoughtful", Name: "Thoughtful", Description: "Deep in thought", PromptFragment: "thoughtful expression, deep in thought, contemplative face"},
		{ID: "expression-pensive", Name: "Pensive", Description: "Lost in deep thought", PromptFragment: "pensive expression, lost in thought, reflective look"},
		{ID: "expression-curious", Name: "Curious", Description: "Interested and questioning", PromptFragment: "curious expression, interested look, questioning face"},
		{ID: "expression-wondering", Name: "Wondering", Description: "Imaginative pondering", PromptFragment: "wondering expression, imaginative look, dreamy pondering"},
		{ID: "expression-skeptical", Name: "Skeptical", Description: "Doubtful and questioning", PromptFragment: "skeptical expression, doubtful look, questioning face"},
		{ID: "expression-focused", Name: "Focused", Description: "Concentrated attention", PromptFragment: "focused expression, concentrated look, attentive face"},
		// Surprised & Amazed
		{ID: "expression-surprised", Name: "Surprised", Description: "Shocked or amazed expression", PromptFragment: "surprised expression, shocked look, wide eyes"},
		{ID: "expression-amazed", Name: "Amazed", Description: "Wonder and astonishment", PromptFragment: "amazed expression, wonder-filled face, astonished look"},
		{ID: "expression-shocked", Name: "Shocked", Description: "Stunned disbelief", PromptFragment: "shocked expression, stunned look, disbelief face"},
		{ID: "expression-bewildered", Name: "Bewildered", Description: "Confused amazement", PromptFragment: "bewildered expression, confused look, puzzled face"},
		// Negative & Complex Emotions
		{ID: "expression-sad", Name: "Sad", Description: "Sorrowful expression", PromptFragment: "sad expression, sorrowful look, downcast face"},
		{ID: "expression-melancholic", Name: "Melancholic", Description: "Deep sadness and longing", PromptFragment: "melancholic expression, deep sadness, wistful look"},
		{ID: "expression-worried", Name: "Worried", Description: "Anxious and concerned", PromptFragment: "worried expression, anxious look, concerned face"},
		{ID: "expression-fearful", Name: "Fearful", Description: "Scared and alarmed", PromptFragment: "fearful expression, scared look, alarmed face"},
		{ID: "expression-angry", Name: "Angry", Description: "Rage and frustration", PromptFragment: "angry expression, furious look, enraged face"},
		{ID: "expression-frustrated", Name: "Frustrated", Description: "Annoyed and vexed", PromptFragment: "frustrated expression, annoyed look, vexed face"},
		{ID: "expression-disgusted", Name: "Disgusted", Description: "Revulsion and distaste", PromptFragment: "disgusted expression, revulsion, distaste face"},
		{ID: "expression-disappointed", Name: "Disappointed", Description: "Let down and dismayed", PromptFragment: "disappointed expression, let down look, dismayed face"},
		// Mysterious & Enigmatic
		{ID: "expression-mysterious", Name: "Mysterious", Description: "Enigmatic, intriguing expression", PromptFragment: "mysterious expression, enigmatic look, intriguing gaze"},
		{ID: "expression-secretive", Name: "Secretive", Description: "Hiding something", PromptFragment: "secretive expression, knowing look, hidden meaning"},
		{ID: "expression-smirking", Name: "Smirking", Description: "Knowing half-smile", PromptFragment: "smirking expression, knowing half-smile, clever look"},
		{ID: "expression-mischievous", Name: "Mischievous", Description: "Playfully naughty", PromptFragment: "mischievous expression, playful naughty look, impish grin"},
		{ID: "expression-seductive", Name: "Seductive", Description: "Alluring and enticing", PromptFragment: "seductive expression, alluring look, enticing gaze"},
		// Other Expressions
		{ID: "expression-dreamy", Name: "Dreamy", Description: "Lost in fantasy", PromptFragment: "dreamy expression, lost in fantasy, faraway look"},
		{ID: "expression-sleepy", Name: "Sleepy", Description: "Drowsy and tired", PromptFragment: "sleepy expression, drowsy look, tired eyes"},
		{ID: "expression-bored", Name: "Bored", Description: "Uninterested and dull", PromptFragment: "bored expression, uninterested look, dull face"},
		{ID: "expression-embarrassed", Name: "Embarrassed", Description: "Flustered and shy", PromptFragment: "embarrassed expression, flustered look, shy face"},
		{ID: "expression-awkward", Name: "Awkward", Description: "Uncomfortable and uneasy", PromptFragment: "awkward expression, uncomfortable look, uneasy face"},
		{ID: "expression-blank", Name: "Blank", Description: "Empty expressionless face", PromptFragment: "blank expression, expressionless face, vacant look"},
	},
}
